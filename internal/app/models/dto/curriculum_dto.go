package dto

import "github.com/mertcan/coursehub/internal/app/models"

// AddUnitRequest appends a unit to a course; order is assigned server-side.
type AddUnitRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200" example:"Basics"`
}

// ResourcePayload is a single resource attached at lesson creation. The URL
// must already be resolvable: either an external link or the path returned by
// a completed upload.
type ResourcePayload struct {
	Title string `json:"title" binding:"required,min=1,max=200" example:"Slides"`
	URL   string `json:"url" binding:"required,resourceurl" example:"uploads/pdf/9a2b.pdf"`
	Type  string `json:"type" binding:"required,oneof=VIDEO NOTE LINK SYLLABUS"`
}

// AddLessonRequest appends a lesson to a unit. Quiz indicates quiz intent,
// which is the only case where resources may be empty.
type AddLessonRequest struct {
	Title     string            `json:"title" binding:"required,min=1,max=200" example:"Lesson 1"`
	Quiz      bool              `json:"quiz"`
	Resources []ResourcePayload `json:"resources" binding:"dive"`
}

// UnitResponse serializes a unit with its lessons
type UnitResponse struct {
	ID       int64            `json:"id"`
	CourseID int64            `json:"courseId"`
	Title    string           `json:"title"`
	Order    int32            `json:"order"`
	Lessons  []LessonResponse `json:"lessons,omitempty"`
}

// LessonResponse serializes a lesson with its resources
type LessonResponse struct {
	ID        int64              `json:"id"`
	UnitID    int64              `json:"unitId"`
	Title     string             `json:"title"`
	Type      models.LessonType  `json:"type"`
	Order     int32              `json:"order"`
	Resources []ResourceResponse `json:"resources,omitempty"`
}

// ResourceResponse serializes a resource
type ResourceResponse struct {
	ID    int64               `json:"id"`
	Title string              `json:"title"`
	URL   string              `json:"url"`
	Type  models.ResourceType `json:"type"`
	Order int32               `json:"order"`
}

// NewUnitResponse maps a unit model and its loaded lessons
func NewUnitResponse(u *models.Unit) UnitResponse {
	resp := UnitResponse{
		ID:       u.ID,
		CourseID: u.CourseID,
		Title:    u.Title,
		Order:    u.OrderIndex,
	}
	for _, l := range u.Lessons {
		resp.Lessons = append(resp.Lessons, NewLessonResponse(l))
	}
	return resp
}

// NewLessonResponse maps a lesson model and its loaded resources
func NewLessonResponse(l *models.Lesson) LessonResponse {
	resp := LessonResponse{
		ID:     l.ID,
		UnitID: l.UnitID,
		Title:  l.Title,
		Type:   l.Type,
		Order:  l.OrderIndex,
	}
	for _, r := range l.Resources {
		resp.Resources = append(resp.Resources, ResourceResponse{
			ID:    r.ID,
			Title: r.Title,
			URL:   r.URL,
			Type:  r.Type,
			Order: r.OrderIndex,
		})
	}
	return resp
}
