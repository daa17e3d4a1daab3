package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/dberrors"
)

// orderConflict maps a unique violation on an append's order index to
// ErrConflict. Two concurrent appends to the same parent can compute the same
// order; the loser trips the unique index and the caller retries.
func orderConflict(err error, constraint string) error {
	if dberrors.IsDuplicateConstraintError(err, constraint) {
		return apperrors.ErrConflict
	}
	return err
}

// Repositories bundles every repository over one shared pool.
type Repositories struct {
	UserRepository     *UserRepository
	TokenRepository    *TokenRepository
	CourseRepository   *CourseRepository
	UnitRepository     *UnitRepository
	LessonRepository   *LessonRepository
	TaxonomyRepository *TaxonomyRepository
}

// NewRepositories creates all repositories over the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		TokenRepository:    NewTokenRepository(db),
		CourseRepository:   NewCourseRepository(db),
		UnitRepository:     NewUnitRepository(db),
		LessonRepository:   NewLessonRepository(db),
		TaxonomyRepository: NewTaxonomyRepository(db),
	}
}
