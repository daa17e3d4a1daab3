package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/app/services"
	"github.com/mertcan/coursehub/internal/middleware"
)

// TaxonomyController serves the category and subject catalog
type TaxonomyController struct {
	taxonomyService services.TaxonomyService
}

// NewTaxonomyController creates a new TaxonomyController
func NewTaxonomyController(taxonomyService services.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// GetCategories godoc
// @Summary List all categories
// @Tags taxonomy
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /categories [get]
func (c *TaxonomyController) GetCategories(ctx *gin.Context) {
	categories, err := c.taxonomyService.GetCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: categories})
}

// GetSubjects godoc
// @Summary List subjects of a category
// @Tags taxonomy
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /categories/{id}/subjects [get]
func (c *TaxonomyController) GetSubjects(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid category ID"),
		})
		return
	}

	subjects, err := c.taxonomyService.GetSubjectsByCategory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: subjects})
}
