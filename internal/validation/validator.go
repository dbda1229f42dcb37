/**
* Name:        validator.go
* Description: Shape checks on the three raw form fields
* Workflow:    date -> gas -> total mileage, one message per failed field
 */
package validation

import (
	"regexp"

	"GasMileageTracker/internal/apperr"
)

const (
	FieldDate         = "date"
	FieldGas          = "gas"
	FieldTotalMileage = "total_mileage"

	// FieldCount is the number of checks; a submit proceeds only when all pass.
	FieldCount = 3
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`)
	intPattern   = regexp.MustCompile(`^\d+$`)
	floatPattern = regexp.MustCompile(`^\d+\.\d+$`)
)

// Result reports how many fields passed and why the others failed.
type Result struct {
	Passed int
	Errors []apperr.FieldError
}

func (r Result) OK() bool {
	return r.Passed == FieldCount
}

// Err returns a ValidationError for the failed fields, or nil when all passed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &apperr.ValidationError{Fields: r.Errors}
}

func IsDate(s string) bool {
	return datePattern.MatchString(s)
}

// IsNumber accepts an integer or a decimal with digits on both sides of the point.
func IsNumber(s string) bool {
	return intPattern.MatchString(s) || floatPattern.MatchString(s)
}

func IsInteger(s string) bool {
	return intPattern.MatchString(s)
}

// Validate checks each field against its shape. There are no range checks.
func Validate(date, gas, totalMileage string) Result {
	var res Result

	if IsDate(date) {
		res.Passed++
	} else {
		res.Errors = append(res.Errors, apperr.FieldError{
			Field:   FieldDate,
			Message: `Enter the date in "yyyy/mm/dd" format.`,
		})
	}

	if IsNumber(gas) {
		res.Passed++
	} else {
		res.Errors = append(res.Errors, apperr.FieldError{
			Field:   FieldGas,
			Message: "Enter the fuel volume as a number, e.g. 35 or 35.5 (L).",
		})
	}

	if IsInteger(totalMileage) {
		res.Passed++
	} else {
		res.Errors = append(res.Errors, apperr.FieldError{
			Field:   FieldTotalMileage,
			Message: "Enter the total mileage as a whole number (km).",
		})
	}

	return res
}
