package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/services"
	"github.com/mertcan/coursehub/internal/middleware"
	"github.com/mertcan/coursehub/internal/pkg/helpers"
)

// AdminController handles the review queue and publish toggling
type AdminController struct {
	reviewService services.ReviewService
}

// NewAdminController creates a new AdminController
func NewAdminController(reviewService services.ReviewService) *AdminController {
	return &AdminController{reviewService: reviewService}
}

// ListPendingCourses godoc
// @Summary List courses waiting for review
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/courses/pending [get]
func (c *AdminController) ListPendingCourses(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	courses, err := c.reviewService.ListPending(ctx, actor, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// ApproveCourse godoc
// @Summary Approve a pending course
// @Description Approve the course and make it visible in the catalog
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/courses/{id}/approve [post]
func (c *AdminController) ApproveCourse(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid course ID"),
		})
		return
	}

	course, err := c.reviewService.Approve(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// RejectCourse godoc
// @Summary Reject a pending course
// @Description Reject the course with a reason shown to the teacher
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body dto.RejectCourseRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/courses/{id}/reject [post]
func (c *AdminController) RejectCourse(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid course ID"),
		})
		return
	}

	var req dto.RejectCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	course, err := c.reviewService.Reject(ctx, actor, id, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// TogglePublished godoc
// @Summary Toggle catalog visibility of an approved course
// @Description Flip the published flag; the review status is untouched
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/courses/{id}/toggle [post]
func (c *AdminController) TogglePublished(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid course ID"),
		})
		return
	}

	course, err := c.reviewService.TogglePublished(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}
