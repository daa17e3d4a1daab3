package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mertcan/coursehub/internal/app/auth"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/repositories"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// ReviewService is the admin side of the publishing pipeline: listing the
// review queue, deciding on submissions, and flipping visibility of approved
// courses.
type ReviewService interface {
	ListPending(ctx context.Context, actor auth.Actor, page, size int) (*dto.CourseListResponse, error)
	Approve(ctx context.Context, actor auth.Actor, courseID int64) (*dto.CourseResponse, error)
	Reject(ctx context.Context, actor auth.Actor, courseID int64, reason string) (*dto.CourseResponse, error)
	TogglePublished(ctx context.Context, actor auth.Actor, courseID int64) (*dto.CourseResponse, error)
}

type reviewServiceImpl struct {
	courseRepo CourseStore
}

// NewReviewService creates a new ReviewService.
func NewReviewService(courseRepo CourseStore) ReviewService {
	return &reviewServiceImpl{courseRepo: courseRepo}
}

// ListPending returns the PENDING queue, oldest submissions first.
func (s *reviewServiceImpl) ListPending(ctx context.Context, actor auth.Actor, page, size int) (*dto.CourseListResponse, error) {
	if !actor.CanReview() {
		return nil, apperrors.ErrPermissionDenied
	}

	status := models.StatusPending
	courses, pagination, err := s.courseRepo.List(ctx, repositories.CourseListParams{
		Status: &status,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing pending courses: %w", err)
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

// pendingCourse loads a course for a review decision and checks it is
// actually waiting for one.
func (s *reviewServiceImpl) pendingCourse(ctx context.Context, actor auth.Actor, courseID int64) (*models.Course, error) {
	if !actor.CanReview() {
		return nil, apperrors.ErrPermissionDenied
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Status != models.StatusPending {
		return nil, apperrors.ErrCourseNotPending
	}
	return course, nil
}

// Approve moves a pending course to APPROVED and makes it visible in the
// catalog immediately.
func (s *reviewServiceImpl) Approve(ctx context.Context, actor auth.Actor, courseID int64) (*dto.CourseResponse, error) {
	course, err := s.pendingCourse(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}

	newStatus, err := course.Status.Transition(models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
	}
	if err := s.courseRepo.UpdateStatus(ctx, courseID, newStatus, true, nil, course.Version); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", courseID).Int64("adminID", actor.UserID).Msg("Course approved")
	return s.reload(ctx, courseID)
}

// Reject moves a pending course back to REJECTED with a mandatory reason the
// teacher sees on their draft.
func (s *reviewServiceImpl) Reject(ctx context.Context, actor auth.Actor, courseID int64, reason string) (*dto.CourseResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrRejectReasonMissing)
	}

	course, err := s.pendingCourse(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}

	newStatus, err := course.Status.Transition(models.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
	}
	if err := s.courseRepo.UpdateStatus(ctx, courseID, newStatus, false, &reason, course.Version); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", courseID).Int64("adminID", actor.UserID).Msg("Course rejected")
	return s.reload(ctx, courseID)
}

// TogglePublished flips catalog visibility of an approved course without
// touching its review status. Re-publishing never re-enters the review queue.
func (s *reviewServiceImpl) TogglePublished(ctx context.Context, actor auth.Actor, courseID int64) (*dto.CourseResponse, error) {
	if !actor.CanReview() {
		return nil, apperrors.ErrPermissionDenied
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Status != models.StatusApproved {
		return nil, apperrors.ErrCourseNotApproved
	}

	if err := s.courseRepo.UpdateStatus(ctx, courseID, course.Status, !course.Published, nil, course.Version); err != nil {
		return nil, err
	}
	return s.reload(ctx, courseID)
}

func (s *reviewServiceImpl) reload(ctx context.Context, courseID int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error reloading course: %w", err)
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}
