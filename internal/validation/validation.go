package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/volunteercentral/volunteer-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// usstate accepts the 50 state codes plus DC.
	_ = validate.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return models.IsValidState(fl.Field().String())
	})
}

// Struct validates a request DTO against its validate tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
