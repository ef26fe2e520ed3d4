package services

import (
	"time"

	"festivos/constants"
	"festivos/errors"
	"festivos/types"
)

// ComputeEasterSunday returns the Gregorian Easter Sunday of year using the
// anonymous (Meeus/Jones/Butcher) algorithm. Integer arithmetic only.
func ComputeEasterSunday(year int) (time.Time, error) {
	if year < constants.MinGregorianYear || year > constants.MaxGregorianYear {
		return time.Time{}, errors.DomainRange(year, constants.MinGregorianYear, constants.MaxGregorianYear)
	}

	a := year % 19 // golden number - 1
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30 // epact
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7 // days to the following Sunday
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return types.CivilDate(year, time.Month(month), day), nil
}
