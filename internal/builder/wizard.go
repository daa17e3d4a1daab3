package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/mertcan/coursehub/internal/app/models/dto"
)

// Step is a position in the publishing flow.
type Step int

const (
	// StepInfo collects course metadata.
	StepInfo Step = iota
	// StepCurriculum builds the unit/lesson tree.
	StepCurriculum
	// StepDone is reached once the course is submitted for review.
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepInfo:
		return "info"
	case StepCurriculum:
		return "curriculum"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ErrBusy is returned when an operation starts while another one is still
// in flight.
var ErrBusy = errors.New("another operation is in progress")

// ErrWrongStep is returned when an operation is invoked from a step that
// does not offer it.
var ErrWrongStep = errors.New("operation not available at this step")

// OpError wraps a failed wizard operation with its name.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "wizard: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// wizardClient is the slice of the API client the wizard drives.
type wizardClient interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	AddUnit(ctx context.Context, courseID int64, req *dto.AddUnitRequest) (*dto.UnitResponse, error)
	AddLesson(ctx context.Context, courseID, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error)
	SubmitCourse(ctx context.Context, courseID int64) (*dto.CourseResponse, error)
}

// Wizard is the client-side state machine of the publishing flow. The step
// only advances when the server confirms the operation; any failure leaves
// the wizard exactly where it was so the user can retry.
//
// A Wizard is not safe for concurrent use; the busy flag guards against
// re-entrant calls from event handlers, not against data races.
type Wizard struct {
	client wizardClient
	course *dto.CourseResponse
	step   Step
	busy   bool
}

// NewWizard starts a fresh publishing flow at the info step.
func NewWizard(client wizardClient) *Wizard {
	return &Wizard{client: client, step: StepInfo}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Course returns the last server-confirmed course state, or nil before the
// first save.
func (w *Wizard) Course() *dto.CourseResponse {
	return w.course
}

func (w *Wizard) begin(op string) error {
	if w.busy {
		return &OpError{Op: op, Err: ErrBusy}
	}
	w.busy = true
	return nil
}

func (w *Wizard) finish() {
	w.busy = false
}

// Resume loads an existing draft and restarts the flow at the info step so
// the user re-walks the wizard with their saved data prefilled.
func (w *Wizard) Resume(ctx context.Context, courseID int64) error {
	if err := w.begin("resume"); err != nil {
		return err
	}
	defer w.finish()

	course, err := w.client.GetCourse(ctx, courseID)
	if err != nil {
		return &OpError{Op: "resume", Err: err}
	}

	w.course = course
	w.step = StepInfo
	return nil
}

// SaveInfo persists the metadata step. The first save creates the draft;
// later saves update it. On success the wizard advances to the curriculum
// step.
func (w *Wizard) SaveInfo(ctx context.Context, req *dto.CreateCourseRequest) error {
	if err := w.begin("save-info"); err != nil {
		return err
	}
	defer w.finish()

	if w.step != StepInfo {
		return &OpError{Op: "save-info", Err: ErrWrongStep}
	}

	var course *dto.CourseResponse
	var err error
	if w.course == nil {
		course, err = w.client.CreateCourse(ctx, req)
	} else {
		course, err = w.client.UpdateCourse(ctx, w.course.ID, &dto.UpdateCourseRequest{
			Title:        &req.Title,
			Description:  &req.Description,
			CategoryID:   &req.CategoryID,
			SubjectID:    &req.SubjectID,
			Price:        &req.Price,
			ThumbnailURL: &req.ThumbnailURL,
			Version:      w.course.Version,
		})
	}
	if err != nil {
		return &OpError{Op: "save-info", Err: err}
	}

	w.course = course
	w.step = StepCurriculum
	return nil
}

// AddUnit appends a unit during the curriculum step. The confirmed unit is
// folded into the local course tree.
func (w *Wizard) AddUnit(ctx context.Context, title string) (*dto.UnitResponse, error) {
	if err := w.begin("add-unit"); err != nil {
		return nil, err
	}
	defer w.finish()

	if w.step != StepCurriculum {
		return nil, &OpError{Op: "add-unit", Err: ErrWrongStep}
	}

	unit, err := w.client.AddUnit(ctx, w.course.ID, &dto.AddUnitRequest{Title: title})
	if err != nil {
		return nil, &OpError{Op: "add-unit", Err: err}
	}

	w.course.Units = append(w.course.Units, *unit)
	return unit, nil
}

// AddLesson appends a lesson to one of the course's units during the
// curriculum step.
func (w *Wizard) AddLesson(ctx context.Context, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error) {
	if err := w.begin("add-lesson"); err != nil {
		return nil, err
	}
	defer w.finish()

	if w.step != StepCurriculum {
		return nil, &OpError{Op: "add-lesson", Err: ErrWrongStep}
	}

	lesson, err := w.client.AddLesson(ctx, w.course.ID, unitID, req)
	if err != nil {
		return nil, &OpError{Op: "add-lesson", Err: err}
	}

	for i := range w.course.Units {
		if w.course.Units[i].ID == unitID {
			w.course.Units[i].Lessons = append(w.course.Units[i].Lessons, *lesson)
			break
		}
	}
	return lesson, nil
}

// Submit sends the course for review. On success the wizard reaches the
// final step; on failure it stays on the curriculum step.
func (w *Wizard) Submit(ctx context.Context) error {
	if err := w.begin("submit"); err != nil {
		return err
	}
	defer w.finish()

	if w.step != StepCurriculum {
		return &OpError{Op: "submit", Err: ErrWrongStep}
	}

	course, err := w.client.SubmitCourse(ctx, w.course.ID)
	if err != nil {
		return &OpError{Op: "submit", Err: err}
	}

	w.course = course
	w.step = StepDone
	return nil
}

// Back steps back from the curriculum step to the info step. The final step
// cannot be left.
func (w *Wizard) Back() error {
	if w.busy {
		return &OpError{Op: "back", Err: ErrBusy}
	}
	if w.step != StepCurriculum {
		return &OpError{Op: "back", Err: ErrWrongStep}
	}
	w.step = StepInfo
	return nil
}
