package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	validate = newValidator()

	yearMu         sync.RWMutex
	minReleaseYear = 1888
	maxYearsAhead  = 5
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
		lo, hi := ReleaseYearRange(time.Now())
		year := int(fl.Field().Int())
		return year >= lo && year <= hi
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		date, err := time.Parse(DateLayout, value)
		if err != nil {
			return false
		}
		return !date.After(time.Now())
	})

	return v
}

// SetReleaseYearRange configures the accepted release years: from min up to
// the current year plus yearsAhead.
func SetReleaseYearRange(min, yearsAhead int) {
	yearMu.Lock()
	defer yearMu.Unlock()
	minReleaseYear = min
	maxYearsAhead = yearsAhead
}

// ReleaseYearRange returns the inclusive bounds for a release year at now.
func ReleaseYearRange(now time.Time) (int, int) {
	yearMu.RLock()
	defer yearMu.RUnlock()
	return minReleaseYear, now.Year() + maxYearsAhead
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "This field cannot be blank"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "notfuture":
		return "Date cannot be in the future"
	case "releaseyear":
		lo, hi := ReleaseYearRange(time.Now())
		return fmt.Sprintf("Release year must be between %d and %d", lo, hi)
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
