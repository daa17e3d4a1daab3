package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/helpers"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// CourseListParams holds filtering and pagination for the course listing.
type CourseListParams struct {
	Status    *models.CourseStatus
	TeacherID *int64
	Page      int
	Size      int
}

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) selectCourseQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "teacher_id", "title", "slug", "description", "category_id", "subject_id",
		"price", "thumbnail_url", "status", "published", "reject_reason", "version",
		"created_at", "updated_at",
	).From("courses").PlaceholderFormat(squirrel.Dollar)
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID, &c.TeacherID, &c.Title, &c.Slug, &c.Description, &c.CategoryID, &c.SubjectID,
		&c.Price, &c.ThumbnailURL, &c.Status, &c.Published, &c.RejectReason, &c.Version,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course row")
		return nil, err
	}
	return &c, nil
}

// Create inserts a new course draft and returns its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := squirrel.Insert("courses").
		Columns("teacher_id", "title", "slug", "description", "category_id", "subject_id",
			"price", "thumbnail_url", "status").
		Values(course.TeacherID, course.Title, course.Slug, course.Description,
			course.CategoryID, course.SubjectID, course.Price, course.ThumbnailURL, course.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a course without its curriculum tree.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sqlStr, args, err := r.selectCourseQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}
	return scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetTree retrieves a course together with its full units -> lessons ->
// resources tree, each level ordered by order_index.
func (r *CourseRepository) GetTree(ctx context.Context, id int64) (*models.Course, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	units, err := r.loadUnits(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Units = units
	return course, nil
}

func (r *CourseRepository) loadUnits(ctx context.Context, courseID int64) ([]*models.Unit, error) {
	sqlStr, args, err := squirrel.Select("id", "course_id", "title", "order_index", "created_at", "updated_at").
		From("units").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("order_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error querying units for course tree")
		return nil, err
	}
	defer rows.Close()

	units := make([]*models.Unit, 0)
	byID := make(map[int64]*models.Unit)
	unitIDs := make([]int64, 0)
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.CourseID, &u.Title, &u.OrderIndex, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.Lessons = make([]*models.Lesson, 0)
		units = append(units, &u)
		byID[u.ID] = &u
		unitIDs = append(unitIDs, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return units, nil
	}

	lessons, err := r.loadLessons(ctx, unitIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range lessons {
		if parent, ok := byID[l.UnitID]; ok {
			parent.Lessons = append(parent.Lessons, l)
		}
	}
	return units, nil
}

func (r *CourseRepository) loadLessons(ctx context.Context, unitIDs []int64) ([]*models.Lesson, error) {
	sqlStr, args, err := squirrel.Select("id", "unit_id", "title", "lesson_type", "order_index", "created_at", "updated_at").
		From("lessons").
		Where(squirrel.Eq{"unit_id": unitIDs}).
		OrderBy("unit_id ASC", "order_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying lessons for course tree")
		return nil, err
	}
	defer rows.Close()

	lessons := make([]*models.Lesson, 0)
	byID := make(map[int64]*models.Lesson)
	lessonIDs := make([]int64, 0)
	for rows.Next() {
		var l models.Lesson
		if err := rows.Scan(&l.ID, &l.UnitID, &l.Title, &l.Type, &l.OrderIndex, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.Resources = make([]*models.Resource, 0)
		lessons = append(lessons, &l)
		byID[l.ID] = &l
		lessonIDs = append(lessonIDs, l.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return lessons, nil
	}

	sqlStr, args, err = squirrel.Select("id", "lesson_id", "title", "url", "resource_type", "order_index", "created_at").
		From("resources").
		Where(squirrel.Eq{"lesson_id": lessonIDs}).
		OrderBy("lesson_id ASC", "order_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	resRows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying resources for course tree")
		return nil, err
	}
	defer resRows.Close()

	for resRows.Next() {
		var res models.Resource
		if err := resRows.Scan(&res.ID, &res.LessonID, &res.Title, &res.URL, &res.Type, &res.OrderIndex, &res.CreatedAt); err != nil {
			return nil, err
		}
		if parent, ok := byID[res.LessonID]; ok {
			parent.Resources = append(parent.Resources, &res)
		}
	}
	return lessons, resRows.Err()
}

// List retrieves a paginated, filtered list of courses.
func (r *CourseRepository) List(ctx context.Context, params CourseListParams) ([]*models.Course, dto.PaginationInfo, error) {
	sqlBuilder := r.selectCourseQuery()
	countBuilder := squirrel.Select("count(*)").From("courses").PlaceholderFormat(squirrel.Dollar)

	if params.Status != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"status": *params.Status})
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *params.Status})
	}
	if params.TeacherID != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"teacher_id": *params.TeacherID})
		countBuilder = countBuilder.Where(squirrel.Eq{"teacher_id": *params.TeacherID})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing course count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, params.Page, params.Size)
	if totalItems == 0 {
		return []*models.Course{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	sqlBuilder = sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course list query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, pagination, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return courses, pagination, nil
}

// UpdateFields updates course metadata with an optimistic version check:
// the row is only touched when its version matches expectedVersion, and the
// version is bumped on success. A mismatch returns ErrConflict.
func (r *CourseRepository) UpdateFields(ctx context.Context, course *models.Course, expectedVersion int64) error {
	sql, args, err := squirrel.Update("courses").
		Set("title", course.Title).
		Set("slug", course.Slug).
		Set("description", course.Description).
		Set("category_id", course.CategoryID).
		Set("subject_id", course.SubjectID).
		Set("price", course.Price).
		Set("thumbnail_url", course.ThumbnailURL).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": course.ID, "version": expectedVersion}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return r.notFoundOrConflict(ctx, course.ID)
	}
	return nil
}

// UpdateStatus transitions the course status with the same optimistic
// version check. rejectReason is only stored on rejection; published is set
// to the given value.
func (r *CourseRepository) UpdateStatus(ctx context.Context, id int64, status models.CourseStatus, published bool, rejectReason *string, expectedVersion int64) error {
	sql, args, err := squirrel.Update("courses").
		Set("status", status).
		Set("published", published).
		Set("reject_reason", rejectReason).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course status SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update course status query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return r.notFoundOrConflict(ctx, id)
	}
	return nil
}

// notFoundOrConflict disambiguates a zero-row update: a missing course is
// a not-found, an existing course with a different version is a conflict.
func (r *CourseRepository) notFoundOrConflict(ctx context.Context, id int64) error {
	var exists bool
	if err := r.DB.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return apperrors.ErrConflict
}

// Delete removes a course; units, lessons and resources cascade via foreign
// keys.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// CountUnits returns the number of units attached to a course.
func (r *CourseRepository) CountUnits(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM units WHERE course_id = $1", courseID).Scan(&count)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error counting course units")
		return 0, err
	}
	return count, nil
}
