package api

import (
	"net/http"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError is one field-level violation in a rejected payload.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var registerOnce sync.Once

// RegisterValidators installs the custom "slug" rule on gin's binding
// engine. Must run before any handler binds a plan payload; server.New
// and the handler tests both call it.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
				return slugPattern.MatchString(fl.Field().String())
			})
		}
	})
}

// FormatValidationErrors turns a binding error into field-level errors.
// Returns nil when the error is not a validation error (malformed JSON).
func FormatValidationErrors(err error) []ValidationError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: errorMessage(fe),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " entries"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "slug":
		return fe.Field() + " must contain only lowercase letters, digits, and hyphens"
	default:
		return fe.Field() + " is invalid"
	}
}

// RespondBindingError sends either the structured validation errors or a
// generic bad-request for malformed bodies.
func RespondBindingError(c *gin.Context, err error) {
	if details := FormatValidationErrors(err); details != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}
