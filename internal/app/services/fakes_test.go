package services

import (
	"context"
	"sort"
	"time"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/repositories"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

// In-memory store fakes. They mirror the ordering and versioning behavior of
// the real repositories so service tests exercise the same contracts.

type fakeCourseStore struct {
	nextID  int64
	courses map[int64]*models.Course
	units   *fakeUnitStore
	lessons *fakeLessonStore
}

func newFakeCourseStore(units *fakeUnitStore, lessons *fakeLessonStore) *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), units: units, lessons: lessons}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) (int64, error) {
	f.nextID++
	cp := *course
	cp.ID = f.nextID
	cp.Version = 1
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.courses[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

// GetTree stitches units, lessons and resources like the real repository,
// including its order_index sorting.
func (f *fakeCourseStore) GetTree(ctx context.Context, id int64) (*models.Course, error) {
	c, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.units == nil {
		return c, nil
	}
	for _, u := range f.units.units {
		if u.CourseID != id {
			continue
		}
		uc := *u
		if f.lessons != nil {
			for _, l := range f.lessons.lessons {
				if l.UnitID == uc.ID {
					lc := *l
					uc.Lessons = append(uc.Lessons, &lc)
				}
			}
			sort.Slice(uc.Lessons, func(i, j int) bool { return uc.Lessons[i].OrderIndex < uc.Lessons[j].OrderIndex })
		}
		c.Units = append(c.Units, &uc)
	}
	sort.Slice(c.Units, func(i, j int) bool { return c.Units[i].OrderIndex < c.Units[j].OrderIndex })
	return c, nil
}

func (f *fakeCourseStore) List(_ context.Context, params repositories.CourseListParams) ([]*models.Course, dto.PaginationInfo, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if params.Status != nil && c.Status != *params.Status {
			continue
		}
		if params.TeacherID != nil && c.TeacherID != *params.TeacherID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, dto.PaginationInfo{TotalItems: int64(len(out)), CurrentPage: 1, TotalPages: 1, PageSize: len(out)}, nil
}

func (f *fakeCourseStore) UpdateFields(_ context.Context, course *models.Course, expectedVersion int64) error {
	cur, ok := f.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if cur.Version != expectedVersion {
		return apperrors.ErrConflict
	}
	cp := *course
	cp.Version = cur.Version + 1
	cp.Status = cur.Status
	cp.Published = cur.Published
	cp.RejectReason = cur.RejectReason
	cp.UpdatedAt = time.Now()
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseStore) UpdateStatus(_ context.Context, id int64, status models.CourseStatus, published bool, rejectReason *string, expectedVersion int64) error {
	cur, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if cur.Version != expectedVersion {
		return apperrors.ErrConflict
	}
	cur.Status = status
	cur.Published = published
	cur.RejectReason = rejectReason
	cur.Version++
	cur.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) CountUnits(_ context.Context, courseID int64) (int64, error) {
	if f.units == nil {
		return 0, nil
	}
	var n int64
	for _, u := range f.units.units {
		if u.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

type fakeUnitStore struct {
	nextID int64
	units  map[int64]*models.Unit
}

func newFakeUnitStore() *fakeUnitStore {
	return &fakeUnitStore{units: make(map[int64]*models.Unit)}
}

func (f *fakeUnitStore) Create(_ context.Context, unit *models.Unit) error {
	f.nextID++
	unit.ID = f.nextID
	var max int32
	for _, u := range f.units {
		if u.CourseID == unit.CourseID && u.OrderIndex > max {
			max = u.OrderIndex
		}
	}
	unit.OrderIndex = max + 1
	unit.CreatedAt = time.Now()
	unit.UpdatedAt = unit.CreatedAt
	cp := *unit
	f.units[unit.ID] = &cp
	return nil
}

func (f *fakeUnitStore) GetByID(_ context.Context, id int64) (*models.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUnitStore) Delete(_ context.Context, courseID, unitID int64) error {
	u, ok := f.units[unitID]
	if !ok || u.CourseID != courseID {
		return apperrors.ErrUnitNotFound
	}
	delete(f.units, unitID)
	return nil
}

type fakeLessonStore struct {
	nextID  int64
	lessons map[int64]*models.Lesson
}

func newFakeLessonStore() *fakeLessonStore {
	return &fakeLessonStore{lessons: make(map[int64]*models.Lesson)}
}

func (f *fakeLessonStore) Create(_ context.Context, lesson *models.Lesson) error {
	f.nextID++
	lesson.ID = f.nextID
	var max int32
	for _, l := range f.lessons {
		if l.UnitID == lesson.UnitID && l.OrderIndex > max {
			max = l.OrderIndex
		}
	}
	lesson.OrderIndex = max + 1
	for i, r := range lesson.Resources {
		r.ID = f.nextID*100 + int64(i)
		r.LessonID = lesson.ID
		r.OrderIndex = int32(i + 1)
	}
	cp := *lesson
	f.lessons[lesson.ID] = &cp
	return nil
}

func (f *fakeLessonStore) Delete(_ context.Context, unitID, lessonID int64) error {
	l, ok := f.lessons[lessonID]
	if !ok || l.UnitID != unitID {
		return apperrors.ErrLessonNotFound
	}
	delete(f.lessons, lessonID)
	return nil
}

type fakeAssetStore struct {
	deleted []string
}

func (f *fakeAssetStore) Delete(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}

type fakeTaxonomyStore struct {
	// subject ID -> category ID
	pairs map[int64]int64
}

func (f *fakeTaxonomyStore) GetCategories(_ context.Context) ([]*models.Category, error) {
	return nil, nil
}

func (f *fakeTaxonomyStore) GetSubjectsByCategory(_ context.Context, _ int64) ([]*models.Subject, error) {
	return nil, nil
}

func (f *fakeTaxonomyStore) ValidatePair(_ context.Context, categoryID, subjectID int64) error {
	cat, ok := f.pairs[subjectID]
	if !ok {
		return apperrors.ErrSubjectNotFound
	}
	if cat != categoryID {
		return apperrors.ErrSubjectNotInCategory
	}
	return nil
}
