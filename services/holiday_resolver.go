package services

import (
	"time"

	"festivos/constants"
	"festivos/errors"
	"festivos/types"
	"festivos/validator"
)

// ResolveRule turns rule into its concrete date in year. easter must hold the
// Easter Sunday of the same year when the rule is Easter-based.
func ResolveRule(rule types.HolidayRule, year int, easter *time.Time) (time.Time, error) {
	if err := validator.ValidateHolidayRule(rule); err != nil {
		return time.Time{}, err
	}

	switch rule.Type {
	case types.Fixed:
		return fixedDate(rule, year)
	case types.FixedMovedToMonday:
		date, err := fixedDate(rule, year)
		if err != nil {
			return time.Time{}, err
		}
		return MoveToMonday(date), nil
	case types.EasterRelative:
		return easterRelativeDate(rule, year, easter)
	case types.EasterRelativeMovedToMonday:
		date, err := easterRelativeDate(rule, year, easter)
		if err != nil {
			return time.Time{}, err
		}
		return MoveToMonday(date), nil
	default:
		return time.Time{}, errors.InvalidRule("rule %q has unknown type %d", rule.Name, int(rule.Type))
	}
}

func fixedDate(rule types.HolidayRule, year int) (time.Time, error) {
	date := types.CivilDate(year, time.Month(rule.Month), rule.Day)
	// time.Date normalises overflow (Feb 29 -> Mar 1); a rule must never be remapped
	if date.Year() != year || date.Month() != time.Month(rule.Month) || date.Day() != rule.Day {
		return time.Time{}, errors.InvalidRule("rule %q: %02d-%02d does not exist in %d", rule.Name, rule.Month, rule.Day, year)
	}
	return date, nil
}

func easterRelativeDate(rule types.HolidayRule, year int, easter *time.Time) (time.Time, error) {
	if easter == nil {
		return time.Time{}, errors.MissingContext(rule.Name)
	}
	if easter.Year() != year {
		return time.Time{}, errors.NewAppError(errors.ErrCodeMissingContext,
			"easter date "+easter.Format(constants.DateLayout)+" does not belong to the target year", errors.ErrMissingContext)
	}
	return types.ToCivilDate(*easter).AddDate(0, 0, *rule.EasterOffsetDays), nil
}

// MoveToMonday advances date to the next Monday; a Monday stays unchanged.
func MoveToMonday(date time.Time) time.Time {
	isoWeekday := (int(date.Weekday())+6)%7 + 1 // 1=Monday..7=Sunday
	return date.AddDate(0, 0, (8-isoWeekday)%7)
}
