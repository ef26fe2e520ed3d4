package dto

import (
	"festivos/constants"
	"festivos/types"
)

// HolidayResponse is one resolved holiday
type HolidayResponse struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	RuleID uint   `json:"ruleId,omitempty"`
}

// HolidayListResponse is the holiday calendar of a country for one year
type HolidayListResponse struct {
	CountryID uint              `json:"countryId"`
	Year      int               `json:"year"`
	Holidays  []HolidayResponse `json:"holidays"`
}

// VerifyHolidayResponse answers whether a date is a holiday
type VerifyHolidayResponse struct {
	CountryID uint             `json:"countryId"`
	Date      string           `json:"date"`
	IsHoliday bool             `json:"isHoliday"`
	Holiday   *HolidayResponse `json:"holiday,omitempty"`
}

// CountryResponse is a catalog entry
type CountryResponse struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Similarity *float64 `json:"similarity,omitempty"`
}

// CountrySearchResponse holds search hits and, when there are none, a suggestion
type CountrySearchResponse struct {
	Countries  []CountryResponse `json:"countries"`
	Suggestion string            `json:"suggestion,omitempty"`
}

// HolidayTypeResponse is one of the four rule types
type HolidayTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewHolidayResponse maps a resolved holiday
func NewHolidayResponse(holiday types.ResolvedHoliday) HolidayResponse {
	return HolidayResponse{
		Name:   holiday.Name,
		Date:   holiday.Date.Format(constants.DateLayout),
		Type:   holiday.Rule.Type.String(),
		RuleID: holiday.Rule.ID,
	}
}

// NewHolidayListResponse maps a resolved calendar; Holidays is never null
func NewHolidayListResponse(countryID uint, year int, holidays []types.ResolvedHoliday) HolidayListResponse {
	out := HolidayListResponse{
		CountryID: countryID,
		Year:      year,
		Holidays:  make([]HolidayResponse, 0, len(holidays)),
	}
	for _, holiday := range holidays {
		out.Holidays = append(out.Holidays, NewHolidayResponse(holiday))
	}
	return out
}
