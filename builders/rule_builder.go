package builders

import (
	"festivos/types"
	"festivos/validator"
)

// HolidayRuleBuilder assembles a holiday rule step by step
type HolidayRuleBuilder struct {
	rule  types.HolidayRule
	moved bool
}

// NewHolidayRuleBuilder starts a rule named name
func NewHolidayRuleBuilder(name string) *HolidayRuleBuilder {
	return &HolidayRuleBuilder{
		rule: types.HolidayRule{Name: name},
	}
}

// WithID sets the store id
func (b *HolidayRuleBuilder) WithID(id uint) *HolidayRuleBuilder {
	b.rule.ID = id
	return b
}

// ForCountry sets the owning country
func (b *HolidayRuleBuilder) ForCountry(countryID uint) *HolidayRuleBuilder {
	b.rule.CountryID = countryID
	return b
}

// OnFixedDate anchors the rule on month/day
func (b *HolidayRuleBuilder) OnFixedDate(month, day int) *HolidayRuleBuilder {
	b.rule.Type = types.Fixed
	b.rule.Month = month
	b.rule.Day = day
	b.rule.EasterOffsetDays = nil
	return b
}

// OnEasterOffset anchors the rule days after (or before, if negative) Easter Sunday
func (b *HolidayRuleBuilder) OnEasterOffset(days int) *HolidayRuleBuilder {
	b.rule.Type = types.EasterRelative
	b.rule.Month = 0
	b.rule.Day = 0
	b.rule.EasterOffsetDays = &days
	return b
}

// MovedToMonday applies the Monday-shift law to whichever anchor is set
func (b *HolidayRuleBuilder) MovedToMonday() *HolidayRuleBuilder {
	b.moved = true
	return b
}

// Build returns the rule after checking its structure
func (b *HolidayRuleBuilder) Build() (types.HolidayRule, error) {
	rule := b.rule
	if rule.EasterOffsetDays != nil {
		offset := *rule.EasterOffsetDays
		rule.EasterOffsetDays = &offset
	}
	if b.moved {
		switch rule.Type {
		case types.Fixed:
			rule.Type = types.FixedMovedToMonday
		case types.EasterRelative:
			rule.Type = types.EasterRelativeMovedToMonday
		}
	}
	if err := validator.ValidateHolidayRule(rule); err != nil {
		return types.HolidayRule{}, err
	}
	return rule, nil
}

// MustBuild is Build for static data; it panics on an invalid rule
func (b *HolidayRuleBuilder) MustBuild() types.HolidayRule {
	rule, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rule
}
