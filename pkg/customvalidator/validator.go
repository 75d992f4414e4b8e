package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires the project-specific rules into the shared
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_format", isDateValid); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// isDateValid accepts schedule dates in YYYY-MM-DD form.
func isDateValid(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
