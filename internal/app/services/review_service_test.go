package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

func newReviewFixture(t *testing.T, status models.CourseStatus) (ReviewService, *fakeCourseStore, int64) {
	t.Helper()
	courses := newFakeCourseStore(nil, nil)
	id, err := courses.Create(context.Background(), &models.Course{
		TeacherID: teacherActor.UserID,
		Title:     "Reviewed course",
		Status:    status,
	})
	if err != nil {
		t.Fatalf("course create failed: %v", err)
	}
	return NewReviewService(courses), courses, id
}

func TestApprovePublishes(t *testing.T) {
	svc, _, id := newReviewFixture(t, models.StatusPending)

	resp, err := svc.Approve(context.Background(), adminActor, id)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if resp.Status != models.StatusApproved {
		t.Errorf("expected APPROVED, got %s", resp.Status)
	}
	if !resp.Published {
		t.Error("approved course must be published")
	}
	if resp.RejectReason != nil {
		t.Errorf("approve must clear reject reason, got %q", *resp.RejectReason)
	}
}

func TestApproveRequiresAdmin(t *testing.T) {
	svc, _, id := newReviewFixture(t, models.StatusPending)

	if _, err := svc.Approve(context.Background(), teacherActor, id); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestApproveRequiresPending(t *testing.T) {
	for _, status := range []models.CourseStatus{models.StatusDraft, models.StatusApproved, models.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, id := newReviewFixture(t, status)
			if _, err := svc.Approve(context.Background(), adminActor, id); !errors.Is(err, apperrors.ErrCourseNotPending) {
				t.Fatalf("expected not-pending, got %v", err)
			}
		})
	}
}

func TestRejectRequiresReason(t *testing.T) {
	svc, _, id := newReviewFixture(t, models.StatusPending)

	if _, err := svc.Reject(context.Background(), adminActor, id, "   "); !errors.Is(err, apperrors.ErrRejectReasonMissing) {
		t.Fatalf("expected missing-reason, got %v", err)
	}

	resp, err := svc.Reject(context.Background(), adminActor, id, "thumbnail is a stock photo")
	if err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if resp.Status != models.StatusRejected {
		t.Errorf("expected REJECTED, got %s", resp.Status)
	}
	if resp.RejectReason == nil || *resp.RejectReason != "thumbnail is a stock photo" {
		t.Errorf("reject reason not recorded: %v", resp.RejectReason)
	}
	if resp.Published {
		t.Error("rejected course must not be published")
	}
}

func TestTogglePublished(t *testing.T) {
	svc, _, id := newReviewFixture(t, models.StatusPending)

	approved, err := svc.Approve(context.Background(), adminActor, id)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if !approved.Published {
		t.Fatal("expected published after approval")
	}

	hidden, err := svc.TogglePublished(context.Background(), adminActor, id)
	if err != nil {
		t.Fatalf("TogglePublished failed: %v", err)
	}
	if hidden.Published {
		t.Error("expected unpublished after toggle")
	}
	if hidden.Status != models.StatusApproved {
		t.Errorf("toggle must not touch review status, got %s", hidden.Status)
	}

	visible, err := svc.TogglePublished(context.Background(), adminActor, id)
	if err != nil {
		t.Fatalf("TogglePublished failed: %v", err)
	}
	if !visible.Published {
		t.Error("expected published after second toggle")
	}
}

func TestToggleRequiresApproved(t *testing.T) {
	svc, _, id := newReviewFixture(t, models.StatusDraft)

	if _, err := svc.TogglePublished(context.Background(), adminActor, id); !errors.Is(err, apperrors.ErrCourseNotApproved) {
		t.Fatalf("expected not-approved, got %v", err)
	}
}

func TestListPendingFiltersByStatus(t *testing.T) {
	courses := newFakeCourseStore(nil, nil)
	for _, status := range []models.CourseStatus{models.StatusPending, models.StatusDraft, models.StatusPending} {
		if _, err := courses.Create(context.Background(), &models.Course{TeacherID: 10, Title: "C", Status: status}); err != nil {
			t.Fatalf("course create failed: %v", err)
		}
	}
	svc := NewReviewService(courses)

	resp, err := svc.ListPending(context.Background(), adminActor, 1, 10)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(resp.Courses) != 2 {
		t.Fatalf("expected 2 pending courses, got %d", len(resp.Courses))
	}
	for _, c := range resp.Courses {
		if c.Status != models.StatusPending {
			t.Errorf("non-pending course in queue: %s", c.Status)
		}
	}
}
