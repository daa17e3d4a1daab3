package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
)

// fakeWizardClient simulates the server side of the publishing flow.
type fakeWizardClient struct {
	nextID     int64
	nextUnitID int64
	courses    map[int64]*dto.CourseResponse

	failCreate error
	failUpdate error
	failUnit   error
	failSubmit error
}

func newFakeWizardClient() *fakeWizardClient {
	return &fakeWizardClient{courses: make(map[int64]*dto.CourseResponse)}
}

func (f *fakeWizardClient) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	f.nextID++
	course := &dto.CourseResponse{
		ID:           f.nextID,
		Title:        req.Title,
		CategoryID:   req.CategoryID,
		SubjectID:    req.SubjectID,
		ThumbnailURL: req.ThumbnailURL,
		Status:       models.StatusDraft,
		Version:      1,
	}
	f.courses[course.ID] = course
	cp := *course
	return &cp, nil
}

func (f *fakeWizardClient) UpdateCourse(_ context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	course := f.courses[id]
	if req.Title != nil {
		course.Title = *req.Title
	}
	course.Version++
	cp := *course
	return &cp, nil
}

func (f *fakeWizardClient) GetCourse(_ context.Context, id int64) (*dto.CourseResponse, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *course
	return &cp, nil
}

func (f *fakeWizardClient) AddUnit(_ context.Context, courseID int64, req *dto.AddUnitRequest) (*dto.UnitResponse, error) {
	if f.failUnit != nil {
		return nil, f.failUnit
	}
	f.nextUnitID++
	return &dto.UnitResponse{
		ID:       f.nextUnitID,
		CourseID: courseID,
		Title:    req.Title,
		Order:    int32(f.nextUnitID),
	}, nil
}

func (f *fakeWizardClient) AddLesson(_ context.Context, _, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error) {
	return &dto.LessonResponse{
		ID:     1,
		UnitID: unitID,
		Title:  req.Title,
		Type:   models.LessonQuiz,
		Order:  1,
	}, nil
}

func (f *fakeWizardClient) SubmitCourse(_ context.Context, courseID int64) (*dto.CourseResponse, error) {
	if f.failSubmit != nil {
		return nil, f.failSubmit
	}
	course := f.courses[courseID]
	course.Status = models.StatusPending
	course.Version++
	cp := *course
	return &cp, nil
}

func infoRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:        "Intro to Go",
		CategoryID:   1,
		SubjectID:    3,
		ThumbnailURL: "uploads/image/t.png",
	}
}

func TestWizardHappyPath(t *testing.T) {
	client := newFakeWizardClient()
	w := NewWizard(client)
	ctx := context.Background()

	if w.Step() != StepInfo {
		t.Fatalf("expected StepInfo at start, got %s", w.Step())
	}

	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("SaveInfo failed: %v", err)
	}
	if w.Step() != StepCurriculum {
		t.Fatalf("expected StepCurriculum after save, got %s", w.Step())
	}

	unit, err := w.AddUnit(ctx, "Basics")
	if err != nil {
		t.Fatalf("AddUnit failed: %v", err)
	}
	if _, err := w.AddLesson(ctx, unit.ID, &dto.AddLessonRequest{Title: "Welcome", Quiz: true}); err != nil {
		t.Fatalf("AddLesson failed: %v", err)
	}

	if err := w.Submit(ctx); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if w.Step() != StepDone {
		t.Errorf("expected StepDone after submit, got %s", w.Step())
	}
	if w.Course().Status != models.StatusPending {
		t.Errorf("expected PENDING status, got %s", w.Course().Status)
	}
}

func TestWizardSaveInfoFailureKeepsStep(t *testing.T) {
	client := newFakeWizardClient()
	client.failCreate = errors.New("server down")
	w := NewWizard(client)

	err := w.SaveInfo(context.Background(), infoRequest())
	if err == nil {
		t.Fatal("expected SaveInfo to fail")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "save-info" {
		t.Fatalf("expected save-info OpError, got %v", err)
	}
	if w.Step() != StepInfo {
		t.Errorf("failed save must not advance, step is %s", w.Step())
	}
	if w.Course() != nil {
		t.Error("no course should be recorded after failed create")
	}
}

func TestWizardSubmitFailureKeepsStep(t *testing.T) {
	client := newFakeWizardClient()
	client.failSubmit = errors.New("course has no units")
	w := NewWizard(client)
	ctx := context.Background()

	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("SaveInfo failed: %v", err)
	}

	if err := w.Submit(ctx); err == nil {
		t.Fatal("expected Submit to fail")
	}
	if w.Step() != StepCurriculum {
		t.Errorf("failed submit must stay on curriculum step, got %s", w.Step())
	}

	// The flow can continue after the failure
	client.failSubmit = nil
	if err := w.Submit(ctx); err != nil {
		t.Fatalf("retried Submit failed: %v", err)
	}
	if w.Step() != StepDone {
		t.Errorf("expected StepDone after retry, got %s", w.Step())
	}
}

func TestWizardStepGuards(t *testing.T) {
	client := newFakeWizardClient()
	w := NewWizard(client)
	ctx := context.Background()

	// Curriculum operations are not available on the info step
	if _, err := w.AddUnit(ctx, "Too early"); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected wrong-step error, got %v", err)
	}
	if err := w.Submit(ctx); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected wrong-step error, got %v", err)
	}

	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("SaveInfo failed: %v", err)
	}

	// Info save is not available on the curriculum step
	if err := w.SaveInfo(ctx, infoRequest()); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected wrong-step error, got %v", err)
	}
}

func TestWizardBack(t *testing.T) {
	client := newFakeWizardClient()
	w := NewWizard(client)
	ctx := context.Background()

	if err := w.Back(); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("back from info step must fail, got %v", err)
	}

	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("SaveInfo failed: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if w.Step() != StepInfo {
		t.Errorf("expected StepInfo after back, got %s", w.Step())
	}

	// Saving again updates the existing draft instead of creating a new one
	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("second SaveInfo failed: %v", err)
	}
	if len(client.courses) != 1 {
		t.Errorf("expected a single draft, got %d", len(client.courses))
	}
	if w.Course().Version != 2 {
		t.Errorf("expected version 2 after update, got %d", w.Course().Version)
	}
}

func TestWizardResume(t *testing.T) {
	client := newFakeWizardClient()
	seeded, err := client.CreateCourse(context.Background(), infoRequest())
	if err != nil {
		t.Fatalf("seed course failed: %v", err)
	}

	w := NewWizard(client)
	if err := w.Resume(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if w.Step() != StepInfo {
		t.Errorf("resume must restart at the info step, got %s", w.Step())
	}
	if w.Course() == nil || w.Course().ID != seeded.ID {
		t.Errorf("resume did not load the draft: %+v", w.Course())
	}
}

func TestWizardOptimisticTree(t *testing.T) {
	client := newFakeWizardClient()
	w := NewWizard(client)
	ctx := context.Background()

	if err := w.SaveInfo(ctx, infoRequest()); err != nil {
		t.Fatalf("SaveInfo failed: %v", err)
	}

	unit, err := w.AddUnit(ctx, "Basics")
	if err != nil {
		t.Fatalf("AddUnit failed: %v", err)
	}
	if _, err := w.AddLesson(ctx, unit.ID, &dto.AddLessonRequest{Title: "Welcome", Quiz: true}); err != nil {
		t.Fatalf("AddLesson failed: %v", err)
	}

	course := w.Course()
	if len(course.Units) != 1 {
		t.Fatalf("expected 1 unit in local tree, got %d", len(course.Units))
	}
	if len(course.Units[0].Lessons) != 1 {
		t.Fatalf("expected 1 lesson in local tree, got %d", len(course.Units[0].Lessons))
	}

	// A failed append leaves the local tree untouched
	client.failUnit = errors.New("boom")
	if _, err := w.AddUnit(ctx, "Broken"); err == nil {
		t.Fatal("expected AddUnit to fail")
	}
	if len(w.Course().Units) != 1 {
		t.Errorf("failed append must not grow the tree, got %d units", len(w.Course().Units))
	}
}
