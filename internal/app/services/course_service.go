package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/mertcan/coursehub/internal/app/auth"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/repositories"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// CourseService defines draft management and the review-pipeline entry
// point. All mutations receive the acting user explicitly.
type CourseService interface {
	CreateDraft(ctx context.Context, actor auth.Actor, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateDraft(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, actor auth.Actor, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error)
	DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error
	SubmitForReview(ctx context.Context, actor auth.Actor, id int64) (*dto.CourseResponse, error)
}

type courseServiceImpl struct {
	courseRepo   CourseStore
	taxonomyRepo TaxonomyStore
	assets       AssetStore
}

// NewCourseService creates a new CourseService. assets may be nil, in which
// case deleted courses leave their stored files behind.
func NewCourseService(courseRepo CourseStore, taxonomyRepo TaxonomyStore, assets AssetStore) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		taxonomyRepo: taxonomyRepo,
		assets:       assets,
	}
}

// CreateDraft creates a new course in DRAFT status. Only a title is
// mandatory; category/subject are validated as a pair when both are given.
// Admins may assign another teacher as the owner.
func (s *courseServiceImpl) CreateDraft(ctx context.Context, actor auth.Actor, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if !actor.CanCreateCourse() {
		return nil, apperrors.ErrPermissionDenied
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrEmptyTitle)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", apperrors.ErrValidationFailed)
	}

	teacherID := actor.UserID
	if req.TeacherID != nil {
		if !actor.CanAssignTeacher() {
			return nil, apperrors.ErrPermissionDenied
		}
		teacherID = *req.TeacherID
	}

	if req.CategoryID != 0 && req.SubjectID != 0 {
		if err := s.taxonomyRepo.ValidatePair(ctx, req.CategoryID, req.SubjectID); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
	}

	course := &models.Course{
		TeacherID:    teacherID,
		Title:        req.Title,
		Slug:         slug.Make(req.Title),
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		SubjectID:    req.SubjectID,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
		Status:       models.StatusDraft,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course draft: %w", err)
	}

	created, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading created course: %w", err)
	}

	resp := dto.NewCourseResponse(created)
	return &resp, nil
}

// UpdateDraft updates course metadata. The source UI allows updates in any
// status (the re-edit path), so no status guard is applied here; the version
// check keeps a concurrent review decision from being clobbered silently.
func (s *courseServiceImpl) UpdateDraft(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModifyCourse(course) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrEmptyTitle)
		}
		course.Title = *req.Title
		course.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.CategoryID != nil {
		course.CategoryID = *req.CategoryID
	}
	if req.SubjectID != nil {
		course.SubjectID = *req.SubjectID
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", apperrors.ErrValidationFailed)
		}
		course.Price = *req.Price
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = *req.ThumbnailURL
	}

	if course.CategoryID != 0 && course.SubjectID != 0 {
		if err := s.taxonomyRepo.ValidatePair(ctx, course.CategoryID, course.SubjectID); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
	}

	expectedVersion := req.Version
	if expectedVersion == 0 {
		expectedVersion = course.Version
	}
	if err := s.courseRepo.UpdateFields(ctx, course, expectedVersion); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading updated course: %w", err)
	}

	resp := dto.NewCourseResponse(updated)
	return &resp, nil
}

// GetCourse fetches a course with its full curriculum tree.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetTree(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// ListCourses lists courses with pagination. Teachers only see their own
// courses; admins may filter by any teacher.
func (s *courseServiceImpl) ListCourses(ctx context.Context, actor auth.Actor, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	params := repositories.CourseListParams{
		Page: filter.Page,
		Size: filter.PageSize,
	}
	if filter.Status != "" {
		status := models.CourseStatus(filter.Status)
		params.Status = &status
	}

	switch {
	case actor.IsAdmin():
		if filter.TeacherID != 0 {
			params.TeacherID = &filter.TeacherID
		}
	default:
		teacherID := actor.UserID
		params.TeacherID = &teacherID
	}

	courses, pagination, err := s.courseRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	resp := &dto.CourseListResponse{
		Courses:        make([]dto.CourseResponse, 0, len(courses)),
		PaginationInfo: pagination,
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, dto.NewCourseResponse(c))
	}
	return resp, nil
}

// DeleteCourse removes a course, cascades through its curriculum tree and
// cleans up the stored files the tree referenced.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error {
	course, err := s.courseRepo.GetTree(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModifyCourse(course) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeStoredAssets(course)
	return nil
}

// removeStoredAssets deletes the uploaded files a course referenced. The
// database row is already gone, so failures are logged, not surfaced.
func (s *courseServiceImpl) removeStoredAssets(course *models.Course) {
	if s.assets == nil {
		return
	}
	paths := []string{course.ThumbnailURL}
	for _, u := range course.Units {
		for _, l := range u.Lessons {
			for _, r := range l.Resources {
				paths = append(paths, r.URL)
			}
		}
	}
	for _, p := range paths {
		if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		if err := s.assets.Delete(p); err != nil {
			logger.Warn().Err(err).Str("path", p).Msg("Failed to delete stored course asset")
		}
	}
}

// SubmitForReview transitions the course into PENDING after checking the
// submission guard: at least one unit, and title/category/subject/thumbnail
// all set. The transition either fully succeeds or the course keeps its
// prior status.
func (s *courseServiceImpl) SubmitForReview(ctx context.Context, actor auth.Actor, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModifyCourse(course) {
		return nil, apperrors.ErrPermissionDenied
	}

	unitCount, err := s.courseRepo.CountUnits(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting units: %w", err)
	}
	if err := course.SubmissionGuard(unitCount); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
	}

	newStatus, err := course.Status.Transition(models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
	}

	// Resubmission clears any previous rejection reason
	if err := s.courseRepo.UpdateStatus(ctx, id, newStatus, false, nil, course.Version); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading submitted course: %w", err)
	}

	resp := dto.NewCourseResponse(updated)
	return &resp, nil
}
