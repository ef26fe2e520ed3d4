package models

import (
	"time"

	"festivos/types"
)

// Country owns a set of holiday rules
type Country struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"uniqueIndex;not null"`
	Holidays []Holiday `json:"holidays,omitempty" gorm:"foreignKey:CountryID"`
}

// HolidayType names one of the four rule types; ids match types.RuleType
type HolidayType struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"not null"`
}

// Holiday is a stored holiday rule. Day/Month are used by fixed types,
// EasterDays by Easter-based types.
type Holiday struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"not null"`
	Day        int         `json:"day"`
	Month      int         `json:"month"`
	EasterDays *int        `json:"easterDays"`
	TypeID     uint        `json:"typeId" gorm:"not null;index"`
	Type       HolidayType `json:"-" gorm:"foreignKey:TypeID"`
	CountryID  uint        `json:"countryId" gorm:"not null;index"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ToRule maps the row to the resolver's rule shape without validating it
func (h Holiday) ToRule() types.HolidayRule {
	rule := types.HolidayRule{
		ID:        h.ID,
		Name:      h.Name,
		Type:      types.RuleType(h.TypeID),
		Month:     h.Month,
		Day:       h.Day,
		CountryID: h.CountryID,
	}
	if h.EasterDays != nil {
		offset := *h.EasterDays
		rule.EasterOffsetDays = &offset
	}
	return rule
}

// HolidayFromRule is the inverse of ToRule
func HolidayFromRule(rule types.HolidayRule) Holiday {
	holiday := Holiday{
		ID:        rule.ID,
		Name:      rule.Name,
		Day:       rule.Day,
		Month:     rule.Month,
		TypeID:    uint(rule.Type),
		CountryID: rule.CountryID,
	}
	if rule.EasterOffsetDays != nil {
		offset := *rule.EasterOffsetDays
		holiday.EasterDays = &offset
	}
	return holiday
}

// AllModels lists the tables managed by AutoMigrate
func AllModels() []interface{} {
	return []interface{}{&Country{}, &HolidayType{}, &Holiday{}}
}
