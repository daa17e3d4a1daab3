package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseNotSubmittable = errors.New("course cannot be submitted in its current status")
	ErrCourseNotPending     = errors.New("course is not pending review")
	ErrCourseNotApproved    = errors.New("course is not approved")
	ErrCourseIncomplete     = errors.New("course is missing required fields for submission")
	ErrCourseHasNoUnits     = errors.New("course has no units")
	ErrRejectReasonMissing  = errors.New("a rejection reason is required")
)

// Curriculum errors
var (
	ErrUnitNotFound      = errors.New("unit not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrLessonNoResources = errors.New("lesson requires at least one resource")
	ErrEmptyTitle        = errors.New("title must not be empty")
)

// Taxonomy errors
var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectNotInCategory = errors.New("subject does not belong to the given category")
)

// Upload errors
var (
	ErrUploadFailed      = errors.New("upload failed")
	ErrFileTooLarge      = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ErrNotFound is a generic alias kept for call sites that do not care which
// entity was missing.
var ErrNotFound = ErrResourceNotFound
