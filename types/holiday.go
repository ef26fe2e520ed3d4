package types

import (
	"fmt"
	"time"

	"festivos/constants"
)

// RuleType is the closed set of ways a holiday rule turns into a date
type RuleType int

const (
	Fixed                       RuleType = constants.HolidayTypeFixed
	FixedMovedToMonday          RuleType = constants.HolidayTypeFixedMovedToMonday
	EasterRelative              RuleType = constants.HolidayTypeEasterRelative
	EasterRelativeMovedToMonday RuleType = constants.HolidayTypeEasterRelativeMovedToMonday
)

var ruleTypeNames = map[RuleType]string{
	Fixed:                       "fixed",
	FixedMovedToMonday:          "fixed-moved-to-monday",
	EasterRelative:              "easter-relative",
	EasterRelativeMovedToMonday: "easter-relative-moved-to-monday",
}

func (t RuleType) String() string {
	if name, ok := ruleTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RuleType(%d)", int(t))
}

// FixedBased reports whether the rule is anchored on month/day
func (t RuleType) FixedBased() bool {
	return t == Fixed || t == FixedMovedToMonday
}

// EasterBased reports whether the rule is anchored on Easter Sunday
func (t RuleType) EasterBased() bool {
	return t == EasterRelative || t == EasterRelativeMovedToMonday
}

// MovedToMonday reports whether the Monday-shift law applies
func (t RuleType) MovedToMonday() bool {
	return t == FixedMovedToMonday || t == EasterRelativeMovedToMonday
}

// ParseRuleType accepts the names produced by String
func ParseRuleType(s string) (RuleType, error) {
	for t, name := range ruleTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown rule type %q", s)
}

// HolidayRule is a holiday definition borrowed read-only from the rule store.
// Month and Day are set iff Type is fixed-based, EasterOffsetDays iff it is Easter-based.
type HolidayRule struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name" validate:"required"`
	Type             RuleType `json:"type" validate:"min=1,max=4"`
	Month            int      `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Day              int      `json:"day,omitempty" validate:"omitempty,min=1,max=31"`
	EasterOffsetDays *int     `json:"easterOffsetDays,omitempty"`
	CountryID        uint     `json:"countryId"`
}

// Signature identifies the date-relevant content of the rule
func (r HolidayRule) Signature() string {
	offset := "-"
	if r.EasterOffsetDays != nil {
		offset = fmt.Sprintf("%d", *r.EasterOffsetDays)
	}
	return fmt.Sprintf("%d.%d.%d.%s", int(r.Type), r.Month, r.Day, offset)
}

// ResolvedHoliday is a rule applied to one specific year
type ResolvedHoliday struct {
	Name string
	Date time.Time
	Rule HolidayRule
}

// CivilDate returns the UTC midnight instant used for every date in this module
func CivilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToCivilDate drops time of day and location from t
func ToCivilDate(t time.Time) time.Time {
	return CivilDate(t.Year(), t.Month(), t.Day())
}

// Country is a lookup entry of the rule store
type Country struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
