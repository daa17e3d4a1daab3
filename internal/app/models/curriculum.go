package models

import "time"

// Unit is an ordered container of lessons within a course. CourseID is a
// back-reference for navigation only; the course owns its units.
type Unit struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	Title      string    `json:"title" db:"title"`
	OrderIndex int32     `json:"order" db:"order_index"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	Lessons []*Lesson `json:"lessons,omitempty"`
}

// LessonType classifies a lesson by the resources attached to it.
type LessonType string

const (
	LessonVideo    LessonType = "VIDEO"
	LessonDocument LessonType = "DOCUMENT"
	LessonQuiz     LessonType = "QUIZ"
)

// Lesson is an ordered container of resources within a unit.
type Lesson struct {
	ID         int64      `json:"id" db:"id"`
	UnitID     int64      `json:"unitId" db:"unit_id"`
	Title      string     `json:"title" db:"title"`
	Type       LessonType `json:"type" db:"lesson_type"`
	OrderIndex int32      `json:"order" db:"order_index"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`

	Resources []*Resource `json:"resources,omitempty"`
}

// ResourceType classifies a single piece of lesson content.
type ResourceType string

const (
	ResourceVideo    ResourceType = "VIDEO"
	ResourceNote     ResourceType = "NOTE"
	ResourceLink     ResourceType = "LINK"
	ResourceSyllabus ResourceType = "SYLLABUS"
)

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceVideo, ResourceNote, ResourceLink, ResourceSyllabus:
		return true
	}
	return false
}

// Downloadable reports whether the resource points at a document the student
// downloads rather than streams or follows.
func (t ResourceType) Downloadable() bool {
	return t == ResourceNote || t == ResourceSyllabus
}

// Resource is a single piece of content attached to a lesson: a video link,
// an uploaded file, a note or a syllabus. URL is either an external link or a
// stored-file path confirmed resolvable before attachment.
type Resource struct {
	ID         int64        `json:"id" db:"id"`
	LessonID   int64        `json:"lessonId" db:"lesson_id"`
	Title      string       `json:"title" db:"title"`
	URL        string       `json:"url" db:"url"`
	Type       ResourceType `json:"type" db:"resource_type"`
	OrderIndex int32        `json:"order" db:"order_index"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
}

// DeriveLessonType computes a lesson's type from its resources: any video
// resource makes it a VIDEO lesson, otherwise any downloadable resource makes
// it a DOCUMENT lesson, otherwise it is a QUIZ.
func DeriveLessonType(resources []*Resource) LessonType {
	hasDownloadable := false
	for _, r := range resources {
		if r.Type == ResourceVideo {
			return LessonVideo
		}
		if r.Type.Downloadable() {
			hasDownloadable = true
		}
	}
	if hasDownloadable {
		return LessonDocument
	}
	return LessonQuiz
}
