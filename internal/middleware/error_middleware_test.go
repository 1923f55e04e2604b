package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodePermissionDenied},
		{"missing scope", apperrors.ErrMissingScope, http.StatusBadRequest, dto.ErrorCodeMissingScope},
		{"batch too large", apperrors.ErrBatchTooLarge, http.StatusBadRequest, dto.ErrorCodeBatchTooLarge},
		{"university not found", apperrors.ErrUniversityNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"literature not found", apperrors.ErrLiteratureNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate direction", apperrors.ErrDirectionAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := handleError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("response has no error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("loading subject 42: %w", apperrors.ErrSubjectNotFound)

	w, body := handleError(t, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if body.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("code = %q, want %q", body.Error.Code, dto.ErrorCodeResourceNotFound)
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	_, body := handleError(t, errors.New("pq: connection refused"))
	if body.Error.Message != "Internal server error" {
		t.Errorf("message = %q, leaked internal detail", body.Error.Message)
	}
}
