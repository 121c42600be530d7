package httpHandler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldErrors converts binding failures into the per-field error shape the
// client expects: [{"title": "Title must be at least 5 characters long."}].
// Returns nil when err is not a field-level validation failure.
func fieldErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out = append(out, gin.H{field: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("Invalid %s ID.", strings.ToLower(field))
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
