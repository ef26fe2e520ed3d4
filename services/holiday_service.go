package services

import (
	"context"
	"sort"
	"time"

	"festivos/services/logger"
	"festivos/types"
	"festivos/validator"
)

// RuleStore supplies the holiday rules of a country. Order is not significant
// beyond tie-breaking between holidays that fall on the same date.
type RuleStore interface {
	FetchRulesForCountry(ctx context.Context, countryID uint) ([]types.HolidayRule, error)
}

type HolidayServiceInterface interface {
	ListHolidays(ctx context.Context, countryID uint, year int) ([]types.ResolvedHoliday, error)
	IsHoliday(ctx context.Context, countryID uint, date time.Time) (bool, error)
	FindRuleForDate(ctx context.Context, countryID uint, date time.Time) (*types.ResolvedHoliday, error)
}

// HolidayService resolves a country's rules into dates. It never reads the
// wall clock: the year always comes from the caller.
type HolidayService struct {
	store  RuleStore
	cache  ResolutionCache
	logger logger.Logger
}

type HolidayServiceOptions struct {
	Store  RuleStore
	Cache  ResolutionCache
	Logger logger.Logger
}

func NewHolidayService(opts HolidayServiceOptions) *HolidayService {
	s := &HolidayService{
		store:  opts.Store,
		cache:  opts.Cache,
		logger: opts.Logger,
	}
	if s.cache == nil {
		s.cache = NoopResolutionCache{}
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	return s
}

// ListHolidays returns every holiday of countryID in year, ordered by date.
// A country without rules yields an empty slice.
func (s *HolidayService) ListHolidays(ctx context.Context, countryID uint, year int) ([]types.ResolvedHoliday, error) {
	rules, err := s.store.FetchRulesForCountry(ctx, countryID)
	if err != nil {
		s.logger.Error("fetching rules of country %d: %v", countryID, err)
		return nil, err
	}
	return s.ResolveRules(ctx, rules, year)
}

// ResolveRules resolves an already fetched rule set for year. Easter Sunday is
// computed at most once per call and shared by every Easter-based rule.
func (s *HolidayService) ResolveRules(ctx context.Context, rules []types.HolidayRule, year int) ([]types.ResolvedHoliday, error) {
	holidays := make([]types.ResolvedHoliday, 0, len(rules))

	var easter *time.Time
	for _, rule := range rules {
		if rule.Type.EasterBased() && easter == nil {
			sunday, err := ComputeEasterSunday(year)
			if err != nil {
				return nil, err
			}
			easter = &sunday
		}

		date, err := s.resolve(ctx, rule, year, easter)
		if err != nil {
			s.logger.Error("resolving rule %d (%s) for %d: %v", rule.ID, rule.Name, year, err)
			return nil, err
		}
		holidays = append(holidays, types.ResolvedHoliday{
			Name: rule.Name,
			Date: date,
			Rule: rule,
		})
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	s.logger.Debug("resolved %d holidays for %d", len(holidays), year)
	return holidays, nil
}

// IsHoliday reports whether date is one of the resolved holidays of its own year
func (s *HolidayService) IsHoliday(ctx context.Context, countryID uint, date time.Time) (bool, error) {
	holiday, err := s.FindRuleForDate(ctx, countryID, date)
	if err != nil {
		return false, err
	}
	return holiday != nil, nil
}

// FindRuleForDate returns the holiday falling on date, or nil when there is none
func (s *HolidayService) FindRuleForDate(ctx context.Context, countryID uint, date time.Time) (*types.ResolvedHoliday, error) {
	day := types.ToCivilDate(date)

	holidays, err := s.ListHolidays(ctx, countryID, day.Year())
	if err != nil {
		return nil, err
	}

	for i := range holidays {
		if holidays[i].Date.Equal(day) {
			holiday := holidays[i]
			return &holiday, nil
		}
	}
	return nil, nil
}

// resolve goes through the cache for stored rules. The rule is validated
// before any lookup so a malformed record is never masked by a cached date.
func (s *HolidayService) resolve(ctx context.Context, rule types.HolidayRule, year int, easter *time.Time) (time.Time, error) {
	if rule.ID == 0 {
		return ResolveRule(rule, year, easter)
	}
	if err := validator.ValidateHolidayRule(rule); err != nil {
		return time.Time{}, err
	}

	key := NewCacheKey(rule, year)
	if date, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Error("cache get %s: %v", key, err)
	} else if ok {
		return date, nil
	}

	date, err := ResolveRule(rule, year, easter)
	if err != nil {
		return time.Time{}, err
	}

	if err := s.cache.Put(ctx, key, date); err != nil {
		s.logger.Error("cache put %s: %v", key, err)
	}
	return date, nil
}
