package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/middleware"
)

// parseIDParam parses the :id path parameter. On failure it writes the
// 400 response itself and reports false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id")
		errorDetail = errorDetail.WithDetails("id must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional int64 query parameter, returning nil
// when absent or malformed.
func queryInt64(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// requireActor fetches the authenticated actor. On failure it writes
// the 401 response itself and reports false.
func requireActor(ctx *gin.Context) (appauth.Actor, bool) {
	actor, ok := middleware.ActorFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Could not validate credentials")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return appauth.Actor{}, false
	}
	return actor, true
}

func badRequest(ctx *gin.Context, msg string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg)
	if err != nil {
		errorDetail = errorDetail.WithDetails(err.Error())
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
