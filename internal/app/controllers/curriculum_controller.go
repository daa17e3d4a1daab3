package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/services"
	"github.com/mertcan/coursehub/internal/middleware"
)

// CurriculumController handles the unit and lesson tree under a course
type CurriculumController struct {
	curriculumService services.CurriculumService
}

// NewCurriculumController creates a new CurriculumController
func NewCurriculumController(curriculumService services.CurriculumService) *CurriculumController {
	return &CurriculumController{curriculumService: curriculumService}
}

func curriculumIDs(ctx *gin.Context, names ...string) ([]int64, bool) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := parseIDParam(ctx, name)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" parameter"),
			})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// AddUnit godoc
// @Summary Add a unit to a course
// @Description Append a unit; its position is assigned server-side
// @Tags curriculum
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body dto.AddUnitRequest true "Unit data"
// @Success 201 {object} dto.APIResponse{data=dto.UnitResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/units [post]
func (c *CurriculumController) AddUnit(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ids, ok := curriculumIDs(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	unit, err := c.curriculumService.AddUnit(ctx, actor, ids[0], &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: unit})
}

// RemoveUnit godoc
// @Summary Remove a unit
// @Description Delete a unit and all lessons under it
// @Tags curriculum
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param unitId path int true "Unit ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/units/{unitId} [delete]
func (c *CurriculumController) RemoveUnit(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ids, ok := curriculumIDs(ctx, "id", "unitId")
	if !ok {
		return
	}

	if err := c.curriculumService.RemoveUnit(ctx, actor, ids[0], ids[1]); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Unit deleted"}})
}

// AddLesson godoc
// @Summary Add a lesson to a unit
// @Description Append a lesson with its resources; lesson type is derived from the resources
// @Tags curriculum
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param unitId path int true "Unit ID"
// @Param request body dto.AddLessonRequest true "Lesson data"
// @Success 201 {object} dto.APIResponse{data=dto.LessonResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/units/{unitId}/lessons [post]
func (c *CurriculumController) AddLesson(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ids, ok := curriculumIDs(ctx, "id", "unitId")
	if !ok {
		return
	}

	var req dto.AddLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	lesson, err := c.curriculumService.AddLesson(ctx, actor, ids[0], ids[1], &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: lesson})
}

// RemoveLesson godoc
// @Summary Remove a lesson
// @Tags curriculum
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param unitId path int true "Unit ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{id}/units/{unitId}/lessons/{lessonId} [delete]
func (c *CurriculumController) RemoveLesson(ctx *gin.Context) {
	actor, err := currentActor(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ids, ok := curriculumIDs(ctx, "id", "unitId", "lessonId")
	if !ok {
		return
	}

	if err := c.curriculumService.RemoveLesson(ctx, actor, ids[0], ids[1], ids[2]); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Lesson deleted"}})
}
