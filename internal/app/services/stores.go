package services

import (
	"context"
	"time"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/repositories"
)

// Store interfaces are the slices of the repository layer each service
// consumes. The pgx-backed repositories satisfy them; tests substitute
// in-memory fakes.

type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetTree(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, params repositories.CourseListParams) ([]*models.Course, dto.PaginationInfo, error)
	UpdateFields(ctx context.Context, course *models.Course, expectedVersion int64) error
	UpdateStatus(ctx context.Context, id int64, status models.CourseStatus, published bool, rejectReason *string, expectedVersion int64) error
	Delete(ctx context.Context, id int64) error
	CountUnits(ctx context.Context, courseID int64) (int64, error)
}

type UnitStore interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	Delete(ctx context.Context, courseID, unitID int64) error
}

type LessonStore interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, unitID, lessonID int64) error
}

// AssetStore is the slice of file storage the course service needs to clean
// up stored files when a course is deleted.
type AssetStore interface {
	Delete(filePath string) error
}

type TaxonomyStore interface {
	GetCategories(ctx context.Context) ([]*models.Category, error)
	GetSubjectsByCategory(ctx context.Context, categoryID int64) ([]*models.Subject, error)
	ValidatePair(ctx context.Context, categoryID, subjectID int64) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type TokenStore interface {
	Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Lookup(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, userID int64) error
}
