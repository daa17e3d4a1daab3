package services

import (
	"context"
	"fmt"

	"github.com/mertcan/coursehub/internal/app/auth"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

// CurriculumService manages the unit and lesson tree under a course.
// Ordering is assigned by the store at insert time, so concurrent appends
// never collide.
type CurriculumService interface {
	AddUnit(ctx context.Context, actor auth.Actor, courseID int64, req *dto.AddUnitRequest) (*dto.UnitResponse, error)
	RemoveUnit(ctx context.Context, actor auth.Actor, courseID, unitID int64) error
	AddLesson(ctx context.Context, actor auth.Actor, courseID, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error)
	RemoveLesson(ctx context.Context, actor auth.Actor, courseID, unitID, lessonID int64) error
}

type curriculumServiceImpl struct {
	courseRepo CourseStore
	unitRepo   UnitStore
	lessonRepo LessonStore
}

// NewCurriculumService creates a new CurriculumService.
func NewCurriculumService(courseRepo CourseStore, unitRepo UnitStore, lessonRepo LessonStore) CurriculumService {
	return &curriculumServiceImpl{
		courseRepo: courseRepo,
		unitRepo:   unitRepo,
		lessonRepo: lessonRepo,
	}
}

// ownedCourse loads the course and verifies the actor may modify it.
func (s *curriculumServiceImpl) ownedCourse(ctx context.Context, actor auth.Actor, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !actor.CanModifyCourse(course) {
		return nil, apperrors.ErrPermissionDenied
	}
	return course, nil
}

// ownedUnit loads a unit and verifies it belongs to the given course.
func (s *curriculumServiceImpl) ownedUnit(ctx context.Context, courseID, unitID int64) (*models.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.CourseID != courseID {
		return nil, apperrors.ErrUnitNotFound
	}
	return unit, nil
}

// AddUnit appends a unit at the end of the course. The order index comes
// back from the insert.
func (s *curriculumServiceImpl) AddUnit(ctx context.Context, actor auth.Actor, courseID int64, req *dto.AddUnitRequest) (*dto.UnitResponse, error) {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrEmptyTitle)
	}

	unit := &models.Unit{
		CourseID: courseID,
		Title:    req.Title,
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("error creating unit: %w", err)
	}

	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

// RemoveUnit deletes a unit and everything under it.
func (s *curriculumServiceImpl) RemoveUnit(ctx context.Context, actor auth.Actor, courseID, unitID int64) error {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return err
	}
	return s.unitRepo.Delete(ctx, courseID, unitID)
}

// AddLesson appends a lesson with its resources in one shot. A lesson must
// carry at least one resource unless it is a quiz, and its type is derived
// from what it carries rather than chosen by the caller.
func (s *curriculumServiceImpl) AddLesson(ctx context.Context, actor auth.Actor, courseID, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error) {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return nil, err
	}
	if _, err := s.ownedUnit(ctx, courseID, unitID); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrEmptyTitle)
	}
	if !req.Quiz && len(req.Resources) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrLessonNoResources)
	}

	lesson := &models.Lesson{
		UnitID: unitID,
		Title:  req.Title,
	}
	for _, p := range req.Resources {
		rt := models.ResourceType(p.Type)
		if !rt.Valid() {
			return nil, fmt.Errorf("%w: unknown resource type %q", apperrors.ErrValidationFailed, p.Type)
		}
		lesson.Resources = append(lesson.Resources, &models.Resource{
			Title: p.Title,
			URL:   p.URL,
			Type:  rt,
		})
	}
	lesson.Type = models.DeriveLessonType(lesson.Resources)

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}

	resp := dto.NewLessonResponse(lesson)
	return &resp, nil
}

// RemoveLesson deletes a lesson and its resources.
func (s *curriculumServiceImpl) RemoveLesson(ctx context.Context, actor auth.Actor, courseID, unitID, lessonID int64) error {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return err
	}
	if _, err := s.ownedUnit(ctx, courseID, unitID); err != nil {
		return err
	}
	return s.lessonRepo.Delete(ctx, unitID, lessonID)
}
