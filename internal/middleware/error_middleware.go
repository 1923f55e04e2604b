package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses:
// authentication failures to 401, authorization failures to 403,
// missing resources to 404, duplicates to 409 and validation failures
// (including oversized batches and missing scope) to 400. Anything
// unrecognized is a 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Incorrect email or password")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenMalformed),
		errors.Is(err, apperrors.ErrNotAuthenticated):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Could not validate credentials")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodePermissionDenied, message(err, "Permission denied"))
	case errors.Is(err, apperrors.ErrMissingScope):
		respond(c, http.StatusBadRequest, dto.ErrorCodeMissingScope, "University id is required")
	case errors.Is(err, apperrors.ErrBatchTooLarge):
		respond(c, http.StatusBadRequest, dto.ErrorCodeBatchTooLarge, "Batch exceeds the allowed size")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrDuplicateResource),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message(err, "Validation failed"))
	default:
		if notFound, ok := notFoundFor(err); ok {
			respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, notFound)
			return
		}
		if duplicate, ok := duplicateFor(err); ok {
			respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, duplicate)
			return
		}
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, msg string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, msg)))
}

// message prefers the wrapped error's own text when it carries request
// context, falling back to the generic one.
func message(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

func notFoundFor(err error) (string, bool) {
	for _, sentinel := range []error{
		apperrors.ErrUniversityNotFound,
		apperrors.ErrDirectionNotFound,
		apperrors.ErrKafedraNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrLiteratureNotFound,
		apperrors.ErrNewsNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrAdminNotFound,
		apperrors.ErrFileNotFound,
	} {
		if errors.Is(err, sentinel) {
			return capitalized(sentinel.Error()), true
		}
	}
	return "", false
}

func duplicateFor(err error) (string, bool) {
	for _, sentinel := range []error{
		apperrors.ErrUniversityAlreadyExists,
		apperrors.ErrDirectionAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
	} {
		if errors.Is(err, sentinel) {
			return capitalized(sentinel.Error()), true
		}
	}
	return "", false
}

func capitalized(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
