package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/middleware"
	"github.com/mertcan/coursehub/internal/pkg/filestorage"
	"github.com/mertcan/coursehub/internal/pkg/helpers"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// UploadController handles course asset uploads. Each endpoint accepts a
// single multipart file and returns the stored path, which the client then
// attaches to a resource or thumbnail.
type UploadController struct {
	fileStorage  filestorage.FileStorage
	assetBaseURL string
}

// NewUploadController creates a new UploadController. assetBaseURL may be
// empty, in which case stored paths are returned as-is.
func NewUploadController(fileStorage filestorage.FileStorage, assetBaseURL string) *UploadController {
	return &UploadController{fileStorage: fileStorage, assetBaseURL: assetBaseURL}
}

func (c *UploadController) upload(ctx *gin.Context, kind filestorage.Kind) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file"),
		})
		return
	}

	path, err := c.fileStorage.Save(file, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("path", path).Str("kind", string(kind)).Msg("File uploaded")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.UploadResponse{
		URL: helpers.ResolveAssetURL(c.assetBaseURL, path),
	}})
}

// UploadVideo godoc
// @Summary Upload a lesson video
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Video file"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 413 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /uploads/video [post]
func (c *UploadController) UploadVideo(ctx *gin.Context) {
	c.upload(ctx, filestorage.KindVideo)
}

// UploadPDF godoc
// @Summary Upload a lesson document
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Document file"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 413 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /uploads/pdf [post]
func (c *UploadController) UploadPDF(ctx *gin.Context) {
	c.upload(ctx, filestorage.KindPDF)
}

// UploadImage godoc
// @Summary Upload a course image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 413 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /uploads/image [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	c.upload(ctx, filestorage.KindImage)
}
