package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
)

// HandleBindingError turns a request binding failure into a 400 listing
// every failed field rule, not just the first.
func HandleBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		violations := make([]apperrors.FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, apperrors.FieldError{
				Field:   fe.Field(),
				Message: formatValidationError(fe),
			})
		}
		errorDetail = errorDetail.WithViolations(violations)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
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
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
