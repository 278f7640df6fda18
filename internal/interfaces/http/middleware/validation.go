package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dukadash/backend/internal/domain/finance"
)

// SetupValidator registers custom validation tags and makes binding
// errors report JSON field names instead of Go field names. Call once
// at startup.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("expensecategory", validExpenseCategory)
}

func validExpenseCategory(fl validator.FieldLevel) bool {
	value := finance.ExpenseCategory(fl.Field().String())
	for _, category := range finance.Categories() {
		if value == category {
			return true
		}
	}
	return false
}

// ValidationMessage turns a validator error into a human-readable
// message for the response body.
func ValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Invalid UUID format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "expensecategory":
		return "Unknown expense category"
	default:
		return "Invalid value"
	}
}
