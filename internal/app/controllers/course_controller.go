package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/services"
	"github.com/mertcan/coursehub/internal/middleware"
)

// CourseController handles course draft management and submission
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse godoc
// @Summary Create a course draft
// @Description Create a new course in DRAFT status; only the title is required
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	course, err := c.courseService.CreateDraft(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course})
}

// UpdateCourse godoc
// @Summary Update course fields
// @Description Update course metadata; omitted fields are left unchanged
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
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

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateDraft(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// GetCourse godoc
// @Summary Get a course with its curriculum tree
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid course ID"),
		})
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// ListCourses godoc
// @Summary List courses
// @Description Teachers see their own courses; admins see all and may filter by teacher
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status (DRAFT, PENDING, APPROVED, REJECTED)"
// @Param teacherId query int false "Filter by teacher (admin only)"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var filter dto.CourseFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	courses, err := c.courseService.ListCourses(ctx, actor, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Delete a course and its whole curriculum tree
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
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

	if err := c.courseService.DeleteCourse(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Course deleted"}})
}

// SubmitCourse godoc
// @Summary Submit a course for review
// @Description Move a complete draft into the PENDING review queue
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/submit [post]
func (c *CourseController) SubmitCourse(ctx *gin.Context) {
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

	course, err := c.courseService.SubmitForReview(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}
