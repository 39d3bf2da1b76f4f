package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tanvi/examtrack/internal/app/models/dto"
)

type validationFixture struct {
	Email string  `validate:"required,email"`
	Score float64 `validate:"min=0,max=300"`
}

func TestValidateStructPasses(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	ok := ValidateStruct(c, &validationFixture{Email: "student@example.com", Score: 280})
	if !ok {
		t.Fatal("expected a valid struct to pass")
	}
	if recorder.Body.Len() != 0 {
		t.Errorf("expected no response body, got %q", recorder.Body.String())
	}
}

func TestValidateStructRejectsAndReports(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	ok := ValidateStruct(c, &validationFixture{Email: "not-an-email", Score: 400})
	if ok {
		t.Fatal("expected an invalid struct to fail")
	}
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body.Success {
		t.Error("success = true on a validation failure")
	}
	if body.Error == nil || body.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("error detail = %+v, want code %q", body.Error, dto.ErrorCodeValidationFailed)
	}
	if body.Error.Details == nil {
		t.Error("expected per-field messages in details")
	}
}
