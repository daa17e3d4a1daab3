package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// LessonRepository handles database operations for lessons and their
// resources.
type LessonRepository struct {
	DB *pgxpool.Pool
}

// NewLessonRepository creates a new instance of LessonRepository.
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{DB: db}
}

const insertLessonSQL = `
INSERT INTO lessons (unit_id, title, lesson_type, order_index)
SELECT $1, $2, $3, COALESCE(MAX(order_index), 0) + 1 FROM lessons WHERE unit_id = $1
RETURNING id, order_index, created_at, updated_at`

// Create appends a lesson to a unit and inserts its resources in one
// transaction, so a half-written lesson never becomes visible.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertLessonSQL, lesson.UnitID, lesson.Title, lesson.Type).
		Scan(&lesson.ID, &lesson.OrderIndex, &lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		if err = orderConflict(err, "lessons_unit_order_key"); errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		logger.Error().Err(err).Int64("unitID", lesson.UnitID).Msg("Error executing create lesson query")
		return err
	}

	for i, res := range lesson.Resources {
		res.LessonID = lesson.ID
		res.OrderIndex = int32(i + 1)
		sql, args, err := squirrel.Insert("resources").
			Columns("lesson_id", "title", "url", "resource_type", "order_index").
			Values(res.LessonID, res.Title, res.URL, res.Type, res.OrderIndex).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt); err != nil {
			logger.Error().Err(err).Int64("lessonID", lesson.ID).Msg("Error inserting lesson resource")
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a lesson under the given unit; its resources cascade.
func (r *LessonRepository) Delete(ctx context.Context, unitID, lessonID int64) error {
	sql, args, err := squirrel.Delete("lessons").
		Where(squirrel.Eq{"id": lessonID, "unit_id": unitID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lessonID", lessonID).Msg("Error executing delete lesson query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}
