package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

// CourseStatus is the review state of a course. Visibility is tracked
// separately by Course.Published so that deactivating an approved course does
// not rewind the review pipeline.
type CourseStatus string

const (
	StatusDraft    CourseStatus = "DRAFT"
	StatusPending  CourseStatus = "PENDING"
	StatusApproved CourseStatus = "APPROVED"
	StatusRejected CourseStatus = "REJECTED"
)

// Valid reports whether s is a known course status.
func (s CourseStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanSubmit reports whether a course in this status may be submitted for
// review. Rejected courses may be edited and resubmitted.
func (s CourseStatus) CanSubmit() bool {
	return s == StatusDraft || s == StatusRejected
}

// Course represents a marketplace course owned by a teacher. Units are
// exclusively owned by the course; deleting a course cascades through its
// whole curriculum tree.
type Course struct {
	ID           int64        `json:"id" db:"id"`
	TeacherID    int64        `json:"teacherId" db:"teacher_id"`
	Title        string       `json:"title" db:"title"`
	Slug         string       `json:"slug" db:"slug"`
	Description  string       `json:"description" db:"description"`
	CategoryID   int64        `json:"categoryId" db:"category_id"`
	SubjectID    int64        `json:"subjectId" db:"subject_id"`
	Price        float64      `json:"price" db:"price"`
	ThumbnailURL string       `json:"thumbnailUrl" db:"thumbnail_url"`
	Status       CourseStatus `json:"status" db:"status"`
	Published    bool         `json:"published" db:"published"`
	RejectReason *string      `json:"rejectReason,omitempty" db:"reject_reason"`
	Version      int64        `json:"version" db:"version"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`

	// Relations (populated when the full tree is loaded)
	Units []*Unit `json:"units,omitempty"`
}

// SubmissionGuard checks the preconditions for moving the course into review.
// unitCount is the number of units currently attached. All failures wrap
// apperrors sentinels so callers can map them to validation responses.
func (c *Course) SubmissionGuard(unitCount int64) error {
	if !c.Status.CanSubmit() {
		return fmt.Errorf("%w: status is %s", apperrors.ErrCourseNotSubmittable, c.Status)
	}

	var missing []string
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if c.CategoryID == 0 {
		missing = append(missing, "categoryId")
	}
	if c.SubjectID == 0 {
		missing = append(missing, "subjectId")
	}
	if c.ThumbnailURL == "" {
		missing = append(missing, "thumbnail")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrCourseIncomplete, missing)
	}

	if unitCount == 0 {
		return apperrors.ErrCourseHasNoUnits
	}

	return nil
}

// ErrInvalidTransition is returned when a lifecycle event is applied to a
// course whose status does not permit it.
var ErrInvalidTransition = errors.New("invalid course status transition")

// Transition applies a review-pipeline transition, returning the resulting
// status. It only validates the status edge; field guards live in
// SubmissionGuard.
func (s CourseStatus) Transition(to CourseStatus) (CourseStatus, error) {
	switch {
	case to == StatusPending && s.CanSubmit():
		return StatusPending, nil
	case to == StatusApproved && s == StatusPending:
		return StatusApproved, nil
	case to == StatusRejected && s == StatusPending:
		return StatusRejected, nil
	}
	return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
}
