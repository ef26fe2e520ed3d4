package constants

import "time"

// Supported calendar range
const (
	MinGregorianYear = 1583
	MaxGregorianYear = 9999
)

// Holiday type ids, as stored in the holiday_types table
const (
	HolidayTypeFixed                       = 1
	HolidayTypeFixedMovedToMonday          = 2
	HolidayTypeEasterRelative              = 3
	HolidayTypeEasterRelativeMovedToMonday = 4
)

// Date layouts
const (
	DateLayout = "2006-01-02"
)

// Cache
const (
	ResolvedCachePrefix = "holiday:resolved"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultWarmCron     = "0 3 * * *"
)
