package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Activity types are lowercase snake_case identifiers such as
// "quiz_completed" or "material_generated_notes".
var activityTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func validateActivityType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return len(value) <= 64 && activityTypePattern.MatchString(value)
}

// RegisterCustomValidators attaches domain validations to gin's binding
// engine. Must be called before the router starts serving requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("activity_type", validateActivityType)
}
