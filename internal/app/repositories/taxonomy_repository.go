package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// TaxonomyRepository provides access to the category/subject taxonomy.
// Write access is limited to the idempotent Ensure helpers used by seeding.
type TaxonomyRepository struct {
	DB *pgxpool.Pool
}

// NewTaxonomyRepository creates a new instance of TaxonomyRepository.
func NewTaxonomyRepository(db *pgxpool.Pool) *TaxonomyRepository {
	return &TaxonomyRepository{DB: db}
}

// GetCategories lists all categories.
func (r *TaxonomyRepository) GetCategories(ctx context.Context) ([]*models.Category, error) {
	sqlStr, args, err := squirrel.Select("id", "name").
		From("categories").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying categories")
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// GetSubjectsByCategory lists all subjects under a category.
func (r *TaxonomyRepository) GetSubjectsByCategory(ctx context.Context, categoryID int64) ([]*models.Subject, error) {
	sqlStr, args, err := squirrel.Select("id", "category_id", "name").
		From("subjects").
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("categoryID", categoryID).Msg("Error querying subjects")
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, &s)
	}
	return subjects, rows.Err()
}

// EnsureCategory inserts the category if missing and returns its ID either way.
func (r *TaxonomyRepository) EnsureCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, name).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error ensuring category")
		return 0, err
	}
	return id, nil
}

// EnsureSubject inserts the subject under the category if missing.
func (r *TaxonomyRepository) EnsureSubject(ctx context.Context, categoryID int64, name string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO subjects (category_id, name) VALUES ($1, $2)
		ON CONFLICT (category_id, name) DO NOTHING`, categoryID, name)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error ensuring subject")
	}
	return err
}

// ValidatePair checks that the subject exists and belongs to the category.
func (r *TaxonomyRepository) ValidatePair(ctx context.Context, categoryID, subjectID int64) error {
	var gotCategoryID int64
	err := r.DB.QueryRow(ctx, "SELECT category_id FROM subjects WHERE id = $1", subjectID).Scan(&gotCategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error fetching subject for validation")
		return err
	}
	if gotCategoryID != categoryID {
		return apperrors.ErrSubjectNotInCategory
	}
	return nil
}
