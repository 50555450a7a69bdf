package response

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// FieldErrors maps a form field to its validation message, so clients can
// render the message next to the offending field.
type FieldErrors map[string]string

// FieldErrorsFromValidation flattens validator.ValidationErrors into a
// FieldErrors map keyed by the struct's JSON-style field name.
func FieldErrorsFromValidation(err error) FieldErrors {
	fieldErrors := FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[snakeCase(fe.Field())] = validationMessage(fe)
	}
	return fieldErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "min":
		return "Too short (minimum " + fe.Param() + ")"
	case "max":
		return "Too long (maximum " + fe.Param() + ")"
	case "len":
		return "Must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "Must contain digits only"
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			// Break only at a lower-to-upper boundary so acronyms like
			// "USN" stay together ("Member1USN" -> "member1_usn").
			if i > 0 && (runes[i-1] < 'A' || runes[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
