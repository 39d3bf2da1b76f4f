package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return recorder, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"exam not found", apperrors.ErrExamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"reminder not found", apperrors.ErrReminderNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeUnauthorized},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"invalid input", apperrors.ErrInvalidInput, http.StatusBadRequest, dto.ErrorCodeInvalidInput},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := handleErr(t, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("response carries no error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorCustomMessageSurfaces(t *testing.T) {
	err := apperrors.NewInvalidInputError("expected score must be a finite number")
	recorder, body := handleErr(t, err)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	if body.Error == nil || body.Error.Message != "expected score must be a finite number" {
		t.Errorf("custom message not surfaced, got %+v", body.Error)
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	_, body := handleErr(t, errors.New("pq: connection refused"))
	if body.Error == nil {
		t.Fatal("response carries no error detail")
	}
	if body.Error.Message != "Internal server error" {
		t.Errorf("internal detail leaked: %q", body.Error.Message)
	}
}
