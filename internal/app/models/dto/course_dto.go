package dto

import (
	"time"

	"github.com/mertcan/coursehub/internal/app/models"
)

// CreateCourseRequest creates a new course draft. A minimal valid draft only
// needs a title; the remaining fields may be filled incrementally before
// submission. TeacherID may only be set by an admin acting on a teacher's
// behalf.
type CreateCourseRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200" example:"Intro to Go"`
	Description  string  `json:"description" example:"A first course on Go"`
	CategoryID   int64   `json:"categoryId" example:"1"`
	SubjectID    int64   `json:"subjectId" example:"3"`
	Price        float64 `json:"price" binding:"gte=0" example:"0"`
	ThumbnailURL string  `json:"thumbnail" example:"uploads/image/4f1c.png"`
	TeacherID    *int64  `json:"teacherId,omitempty"`
}

// UpdateCourseRequest updates draft fields. Nil pointers leave the field
// unchanged. Version must match the current course version or the update is
// rejected with a conflict.
type UpdateCourseRequest struct {
	Title        *string  `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description  *string  `json:"description,omitempty"`
	CategoryID   *int64   `json:"categoryId,omitempty"`
	SubjectID    *int64   `json:"subjectId,omitempty"`
	Price        *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	ThumbnailURL *string  `json:"thumbnail,omitempty"`
	Version      int64    `json:"version" binding:"gte=0"`
}

// CourseFilterRequest filters the course listing
type CourseFilterRequest struct {
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED"`
	TeacherID int64  `form:"teacherId"`
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"size,default=10"`
}

// CourseResponse is the serialized course, optionally with the full
// curriculum tree attached.
type CourseResponse struct {
	ID           int64               `json:"id"`
	TeacherID    int64               `json:"teacherId"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	CategoryID   int64               `json:"categoryId"`
	SubjectID    int64               `json:"subjectId"`
	Price        float64             `json:"price"`
	ThumbnailURL string              `json:"thumbnailUrl"`
	Status       models.CourseStatus `json:"status"`
	Published    bool                `json:"published"`
	RejectReason *string             `json:"rejectReason,omitempty"`
	Version      int64               `json:"version"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Units        []UnitResponse      `json:"units,omitempty"`
}

// CourseListResponse is a paginated course listing
type CourseListResponse struct {
	Courses        []CourseResponse `json:"courses"`
	PaginationInfo PaginationInfo   `json:"pagination"`
}

// NewCourseResponse maps a course model (and its loaded tree, if any) to the
// response shape.
func NewCourseResponse(c *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:           c.ID,
		TeacherID:    c.TeacherID,
		Title:        c.Title,
		Slug:         c.Slug,
		Description:  c.Description,
		CategoryID:   c.CategoryID,
		SubjectID:    c.SubjectID,
		Price:        c.Price,
		ThumbnailURL: c.ThumbnailURL,
		Status:       c.Status,
		Published:    c.Published,
		RejectReason: c.RejectReason,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, u := range c.Units {
		resp.Units = append(resp.Units, NewUnitResponse(u))
	}
	return resp
}
