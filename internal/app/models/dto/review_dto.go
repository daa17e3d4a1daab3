package dto

// RejectCourseRequest carries the mandatory rejection reason
type RejectCourseRequest struct {
	Reason string `json:"reason" binding:"required,min=1" example:"Thumbnail violates content policy"`
}
