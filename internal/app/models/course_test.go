package models

import (
	"errors"
	"testing"

	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

func completeDraft() *Course {
	return &Course{
		ID:           1,
		Title:        "Intro to X",
		CategoryID:   10,
		SubjectID:    20,
		ThumbnailURL: "uploads/image/thumb.png",
		Status:       StatusDraft,
	}
}

func TestSubmissionGuardComplete(t *testing.T) {
	c := completeDraft()
	if err := c.SubmissionGuard(1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSubmissionGuardZeroUnits(t *testing.T) {
	c := completeDraft()
	if err := c.SubmissionGuard(0); !errors.Is(err, apperrors.ErrCourseHasNoUnits) {
		t.Fatalf("expected ErrCourseHasNoUnits, got %v", err)
	}
}

func TestSubmissionGuardMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Course)
	}{
		{"title", func(c *Course) { c.Title = "" }},
		{"category", func(c *Course) { c.CategoryID = 0 }},
		{"subject", func(c *Course) { c.SubjectID = 0 }},
		{"thumbnail", func(c *Course) { c.ThumbnailURL = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := completeDraft()
			tc.mutate(c)
			if err := c.SubmissionGuard(1); !errors.Is(err, apperrors.ErrCourseIncomplete) {
				t.Fatalf("expected ErrCourseIncomplete, got %v", err)
			}
		})
	}
}

func TestSubmissionGuardAlreadyPending(t *testing.T) {
	c := completeDraft()
	c.Status = StatusPending
	if err := c.SubmissionGuard(1); !errors.Is(err, apperrors.ErrCourseNotSubmittable) {
		t.Fatalf("expected ErrCourseNotSubmittable, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to CourseStatus
		ok       bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusRejected, StatusPending, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusDraft, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
	}
	for _, tc := range cases {
		got, err := tc.from.Transition(tc.to)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s -> %s: unexpected err: %v", tc.from, tc.to, err)
			}
			if got != tc.to {
				t.Fatalf("%s -> %s: got %s", tc.from, tc.to, got)
			}
		} else {
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
			}
			if got != tc.from {
				t.Fatalf("%s -> %s: status moved to %s on failed transition", tc.from, tc.to, got)
			}
		}
	}
}
