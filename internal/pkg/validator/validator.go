package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so they line up with form inputs.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// Validate struct fields. Returns field name -> failed tag, or nil.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	errs := make(map[string]string)
	for _, fe := range verrs {
		errs[fe.Field()] = fe.Tag()
	}
	return errs
}

// Message turns a failed tag into text fit for a form hint.
func Message(tag string) string {
	switch tag {
	case "required", "required_if":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "max":
		return "This value is too long"
	case "oneof":
		return "Choose one of the listed options"
	default:
		return "This value is invalid"
	}
}
