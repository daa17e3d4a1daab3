package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mertcan/coursehub/internal/app/models/dto"
)

// BindingErrorDetail turns a gin binding failure into a field-aware
// validation error. Only the first failing field is reported.
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(e)).
			WithField(e.Field())
	}
	return dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").
		WithDetails(err.Error())
}

// RespondBindingError writes the standard 400 envelope for a binding failure.
func RespondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.APIResponse{Error: BindingErrorDetail(err)})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "resourceurl":
		return e.Field() + " must be an absolute URL or an uploaded file path"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
