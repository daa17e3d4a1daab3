package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// assetPathPattern matches the relative paths handed out by the upload
// endpoints, e.g. "uploads/pdf/9a2b.pdf".
var assetPathPattern = regexp.MustCompile(`^uploads/(video|pdf|image)/[A-Za-z0-9._\-]+$`)

// validResourceURL accepts an absolute http(s) URL for external resources or
// a stored upload path for files pushed through the upload endpoints.
func validResourceURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return true
	}
	return assetPathPattern.MatchString(strings.TrimPrefix(value, "/"))
}

// RegisterCustomValidators attaches the project-specific rules to the
// validator engine Gin binds requests with.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("resourceurl", validResourceURL)
}
