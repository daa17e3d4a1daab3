package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

func newCurriculumFixture(t *testing.T) (CurriculumService, int64) {
	t.Helper()
	units := newFakeUnitStore()
	lessons := newFakeLessonStore()
	courses := newFakeCourseStore(units, lessons)

	id, err := courses.Create(context.Background(), &models.Course{
		TeacherID: teacherActor.UserID,
		Title:     "Host course",
		Status:    models.StatusDraft,
	})
	if err != nil {
		t.Fatalf("course create failed: %v", err)
	}
	return NewCurriculumService(courses, units, lessons), id
}

func TestAddUnitAssignsSequentialOrder(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)

	for i := 1; i <= 3; i++ {
		resp, err := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{
			Title: fmt.Sprintf("Unit %d", i),
		})
		if err != nil {
			t.Fatalf("AddUnit %d failed: %v", i, err)
		}
		if resp.Order != int32(i) {
			t.Errorf("unit %d: expected order %d, got %d", i, i, resp.Order)
		}
	}
}

func TestAddUnitOwnership(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)

	_, err := svc.AddUnit(context.Background(), otherTeacher, courseID, &dto.AddUnitRequest{Title: "Nope"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestAddUnitUnknownCourse(t *testing.T) {
	svc, _ := newCurriculumFixture(t)

	_, err := svc.AddUnit(context.Background(), teacherActor, 999, &dto.AddUnitRequest{Title: "X"})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected course not found, got %v", err)
	}
}

func TestAddLessonDerivesType(t *testing.T) {
	tests := []struct {
		name      string
		quiz      bool
		resources []dto.ResourcePayload
		want      models.LessonType
	}{
		{
			name: "video resource wins",
			resources: []dto.ResourcePayload{
				{Title: "Notes", URL: "uploads/pdf/a.pdf", Type: "NOTE"},
				{Title: "Recording", URL: "uploads/video/a.mp4", Type: "VIDEO"},
			},
			want: models.LessonVideo,
		},
		{
			name: "downloadable only",
			resources: []dto.ResourcePayload{
				{Title: "Syllabus", URL: "uploads/pdf/s.pdf", Type: "SYLLABUS"},
			},
			want: models.LessonDocument,
		},
		{
			name: "links only falls back to quiz",
			resources: []dto.ResourcePayload{
				{Title: "Reference", URL: "https://example.com", Type: "LINK"},
			},
			want: models.LessonQuiz,
		},
		{
			name: "quiz with no resources",
			quiz: true,
			want: models.LessonQuiz,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, courseID := newCurriculumFixture(t)
			unit, err := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "U"})
			if err != nil {
				t.Fatalf("AddUnit failed: %v", err)
			}

			resp, err := svc.AddLesson(context.Background(), teacherActor, courseID, unit.ID, &dto.AddLessonRequest{
				Title:     "L",
				Quiz:      tt.quiz,
				Resources: tt.resources,
			})
			if err != nil {
				t.Fatalf("AddLesson failed: %v", err)
			}
			if resp.Type != tt.want {
				t.Errorf("expected type %s, got %s", tt.want, resp.Type)
			}
			if len(resp.Resources) != len(tt.resources) {
				t.Errorf("expected %d resources, got %d", len(tt.resources), len(resp.Resources))
			}
		})
	}
}

func TestAddLessonRequiresResourcesUnlessQuiz(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)
	unit, err := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "U"})
	if err != nil {
		t.Fatalf("AddUnit failed: %v", err)
	}

	_, err = svc.AddLesson(context.Background(), teacherActor, courseID, unit.ID, &dto.AddLessonRequest{Title: "Empty"})
	if !errors.Is(err, apperrors.ErrLessonNoResources) {
		t.Fatalf("expected no-resources error, got %v", err)
	}
}

func TestAddLessonSequentialOrderPerUnit(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)
	unitA, _ := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "A"})
	unitB, _ := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "B"})

	quiz := &dto.AddLessonRequest{Title: "Q", Quiz: true}
	for i := 1; i <= 2; i++ {
		resp, err := svc.AddLesson(context.Background(), teacherActor, courseID, unitA.ID, quiz)
		if err != nil {
			t.Fatalf("AddLesson failed: %v", err)
		}
		if resp.Order != int32(i) {
			t.Errorf("unit A lesson %d: expected order %d, got %d", i, i, resp.Order)
		}
	}

	// Ordering restarts per unit
	resp, err := svc.AddLesson(context.Background(), teacherActor, courseID, unitB.ID, quiz)
	if err != nil {
		t.Fatalf("AddLesson failed: %v", err)
	}
	if resp.Order != 1 {
		t.Errorf("unit B first lesson: expected order 1, got %d", resp.Order)
	}
}

func TestAddLessonUnknownUnit(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)

	_, err := svc.AddLesson(context.Background(), teacherActor, courseID, 42, &dto.AddLessonRequest{Title: "L", Quiz: true})
	if !errors.Is(err, apperrors.ErrUnitNotFound) {
		t.Fatalf("expected unit not found, got %v", err)
	}
}

func TestCourseTreeRoundTrip(t *testing.T) {
	units := newFakeUnitStore()
	lessons := newFakeLessonStore()
	courses := newFakeCourseStore(units, lessons)
	taxonomy := &fakeTaxonomyStore{pairs: map[int64]int64{3: 1}}
	courseSvc := NewCourseService(courses, taxonomy, nil)
	svc := NewCurriculumService(courses, units, lessons)
	ctx := context.Background()

	created, err := courseSvc.CreateDraft(ctx, teacherActor, &dto.CreateCourseRequest{
		Title: "Intro to X", CategoryID: 1, SubjectID: 3, ThumbnailURL: "uploads/image/t.png",
	})
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	for u := 1; u <= 2; u++ {
		unit, err := svc.AddUnit(ctx, teacherActor, created.ID, &dto.AddUnitRequest{Title: fmt.Sprintf("Unit %d", u)})
		if err != nil {
			t.Fatalf("AddUnit %d failed: %v", u, err)
		}
		for l := 1; l <= 2; l++ {
			_, err := svc.AddLesson(ctx, teacherActor, created.ID, unit.ID, &dto.AddLessonRequest{
				Title: fmt.Sprintf("Lesson %d.%d", u, l),
				Resources: []dto.ResourcePayload{
					{Title: "Slides", URL: fmt.Sprintf("uploads/pdf/%d-%d.pdf", u, l), Type: "NOTE"},
				},
			})
			if err != nil {
				t.Fatalf("AddLesson %d.%d failed: %v", u, l, err)
			}
		}
	}

	got, err := courseSvc.GetCourse(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if len(got.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got.Units))
	}
	for i, unit := range got.Units {
		if unit.Order != int32(i+1) {
			t.Errorf("unit %d: expected order %d, got %d", i, i+1, unit.Order)
		}
		if unit.Title != fmt.Sprintf("Unit %d", i+1) {
			t.Errorf("unit %d: unexpected title %q", i, unit.Title)
		}
		if len(unit.Lessons) != 2 {
			t.Fatalf("unit %d: expected 2 lessons, got %d", i, len(unit.Lessons))
		}
		for j, lesson := range unit.Lessons {
			if lesson.Order != int32(j+1) {
				t.Errorf("lesson %d.%d: expected order %d, got %d", i, j, j+1, lesson.Order)
			}
			if lesson.Type != models.LessonDocument {
				t.Errorf("lesson %d.%d: expected DOCUMENT type, got %s", i, j, lesson.Type)
			}
			if len(lesson.Resources) != 1 {
				t.Fatalf("lesson %d.%d: expected 1 resource, got %d", i, j, len(lesson.Resources))
			}
			res := lesson.Resources[0]
			wantURL := fmt.Sprintf("uploads/pdf/%d-%d.pdf", i+1, j+1)
			if res.Title != "Slides" || res.URL != wantURL || res.Type != models.ResourceNote {
				t.Errorf("lesson %d.%d: resource lost data: %+v", i, j, res)
			}
		}
	}
}

func TestRemoveLessonScopedToUnit(t *testing.T) {
	svc, courseID := newCurriculumFixture(t)
	unitA, _ := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "A"})
	unitB, _ := svc.AddUnit(context.Background(), teacherActor, courseID, &dto.AddUnitRequest{Title: "B"})

	lesson, err := svc.AddLesson(context.Background(), teacherActor, courseID, unitA.ID, &dto.AddLessonRequest{Title: "L", Quiz: true})
	if err != nil {
		t.Fatalf("AddLesson failed: %v", err)
	}

	if err := svc.RemoveLesson(context.Background(), teacherActor, courseID, unitB.ID, lesson.ID); !errors.Is(err, apperrors.ErrLessonNotFound) {
		t.Fatalf("expected lesson not found under wrong unit, got %v", err)
	}
	if err := svc.RemoveLesson(context.Background(), teacherActor, courseID, unitA.ID, lesson.ID); err != nil {
		t.Fatalf("RemoveLesson failed: %v", err)
	}
}
