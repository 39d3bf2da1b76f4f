package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tanvi/examtrack/internal/app/models/dto"
)

var validate = validator.New()

// ValidateStruct runs the validator over an already-bound request body
// and writes a field-level error response on failure. Returns true when
// the value passed validation.
func ValidateStruct(c *gin.Context, obj interface{}) bool {
	if err := validate.Struct(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
