package validator

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"festivos/constants"
	"festivos/errors"
	"festivos/types"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(holidayRuleStructLevel, types.HolidayRule{})
	return v
}

// holidayRuleStructLevel enforces that exactly one anchor is populated for the rule type
func holidayRuleStructLevel(sl validator.StructLevel) {
	rule := sl.Current().Interface().(types.HolidayRule)

	switch {
	case rule.Type.FixedBased():
		if rule.Month == 0 {
			sl.ReportError(rule.Month, "Month", "month", "required_for_fixed", "")
		}
		if rule.Day == 0 {
			sl.ReportError(rule.Day, "Day", "day", "required_for_fixed", "")
		}
		if rule.EasterOffsetDays != nil {
			sl.ReportError(rule.EasterOffsetDays, "EasterOffsetDays", "easterOffsetDays", "excluded_for_fixed", "")
		}
	case rule.Type.EasterBased():
		if rule.EasterOffsetDays == nil {
			sl.ReportError(rule.EasterOffsetDays, "EasterOffsetDays", "easterOffsetDays", "required_for_easter", "")
		}
		if rule.Month != 0 || rule.Day != 0 {
			sl.ReportError(rule.Month, "Month", "month", "excluded_for_easter", "")
		}
	}
}

// ValidateHolidayRule checks the structural invariant of a rule record
func ValidateHolidayRule(rule types.HolidayRule) error {
	err := validate.Struct(rule)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewAppError(errors.ErrCodeInvalidRule, fmt.Sprintf("rule %q cannot be validated", rule.Name), err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.InvalidRule("rule %q (%s): %s", rule.Name, rule.Type, strings.Join(problems, ", "))
}

// ValidateYear accepts the four-digit Gregorian years every rule type can serve
func ValidateYear(year int) error {
	if year < constants.MinGregorianYear || year > constants.MaxGregorianYear {
		return errors.NewAppError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("year %d must be between %d and %d", year, constants.MinGregorianYear, constants.MaxGregorianYear),
			errors.ErrDomainRange)
	}
	return nil
}

// ValidateCivilDate checks that year/month/day name an existing calendar date
func ValidateCivilDate(year, month, day int) error {
	if err := ValidateYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%04d-%02d-%02d is not a date", year, month, day), errors.ErrInvalidDate)
	}
	date := types.CivilDate(year, time.Month(month), day)
	if date.Month() != time.Month(month) || date.Day() != day {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%04d-%02d-%02d is not a date", year, month, day), errors.ErrInvalidDate)
	}
	return nil
}

// ParseISODate parses a YYYY-MM-DD calendar date
func ParseISODate(value string) (time.Time, error) {
	date, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%q is not an ISO-8601 date", value), errors.ErrInvalidFormat)
	}
	return types.ToCivilDate(date), nil
}
