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

// UnitRepository handles database operations for units.
type UnitRepository struct {
	DB *pgxpool.Pool
}

// NewUnitRepository creates a new instance of UnitRepository.
func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{DB: db}
}

// insertUnitSQL appends the unit at the end of its course, computing the
// order inside the INSERT. Concurrent appends can still snapshot the same
// MAX; the loser fails on units_course_order_key and surfaces as a conflict.
const insertUnitSQL = `
INSERT INTO units (course_id, title, order_index)
SELECT $1, $2, COALESCE(MAX(order_index), 0) + 1 FROM units WHERE course_id = $1
RETURNING id, order_index, created_at, updated_at`

// Create appends a unit to a course with a server-assigned order.
func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	err := r.DB.QueryRow(ctx, insertUnitSQL, unit.CourseID, unit.Title).
		Scan(&unit.ID, &unit.OrderIndex, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		if err = orderConflict(err, "units_course_order_key"); errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		logger.Error().Err(err).Int64("courseID", unit.CourseID).Msg("Error executing create unit query")
		return err
	}
	return nil
}

// GetByID retrieves a unit by id.
func (r *UnitRepository) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	sqlStr, args, err := squirrel.Select("id", "course_id", "title", "order_index", "created_at", "updated_at").
		From("units").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u models.Unit
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&u.ID, &u.CourseID, &u.Title, &u.OrderIndex, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUnitNotFound
		}
		logger.Error().Err(err).Int64("unitID", id).Msg("Error scanning unit row")
		return nil, err
	}
	return &u, nil
}

// Delete removes a unit under the given course; lessons and resources
// cascade. Scoping the delete by course id keeps a unit id from another
// course from being deleted through the wrong parent.
func (r *UnitRepository) Delete(ctx context.Context, courseID, unitID int64) error {
	sql, args, err := squirrel.Delete("units").
		Where(squirrel.Eq{"id": unitID, "course_id": courseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("unitID", unitID).Msg("Error executing delete unit query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}
