package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/auth"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/middleware"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	idStr := ctx.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}

// currentActor reads the caller identity placed on the context by JWTAuth.
func currentActor(ctx *gin.Context) (auth.Actor, error) {
	userID, ok := ctx.Get(middleware.ContextUserID)
	if !ok {
		return auth.Actor{}, apperrors.ErrTokenInvalid
	}
	id, ok := userID.(int64)
	if !ok {
		return auth.Actor{}, apperrors.ErrTokenInvalid
	}

	role, _ := ctx.Get(middleware.ContextRole)
	roleStr, _ := role.(string)

	return auth.Actor{UserID: id, Role: models.Role(roleStr)}, nil
}
