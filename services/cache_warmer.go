package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"festivos/services/logger"

	"golang.org/x/sync/errgroup"
)

const defaultWarmConcurrency = 4

// CacheWarmer resolves every country ahead of time so that the resolution
// cache is populated before requests arrive.
type CacheWarmer struct {
	countries   CountryLister
	holidays    *HolidayService
	logger      logger.Logger
	concurrency int
}

type CacheWarmerOptions struct {
	Countries   CountryLister
	Holidays    *HolidayService
	Logger      logger.Logger
	Concurrency int
}

func NewCacheWarmer(opts CacheWarmerOptions) *CacheWarmer {
	w := &CacheWarmer{
		countries:   opts.Countries,
		holidays:    opts.Holidays,
		logger:      opts.Logger,
		concurrency: opts.Concurrency,
	}
	if w.concurrency <= 0 {
		w.concurrency = defaultWarmConcurrency
	}
	if w.logger == nil {
		w.logger = logger.NewNopLogger()
	}
	return w
}

// Warm resolves all countries for each of years. A country that fails is
// logged and reported in the joined error; the others are still warmed.
func (w *CacheWarmer) Warm(ctx context.Context, years ...int) error {
	countries, err := w.countries.ListCountries(ctx)
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	var g errgroup.Group
	g.SetLimit(w.concurrency)
	for _, country := range countries {
		for _, year := range years {
			country, year := country, year
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				holidays, err := w.holidays.ListHolidays(ctx, country.ID, year)
				if err != nil {
					w.logger.Error("warming %s (%d) for %d: %v", country.Name, country.ID, year, err)
					mu.Lock()
					errs = append(errs, fmt.Errorf("country %d, year %d: %w", country.ID, year, err))
					mu.Unlock()
					return nil
				}
				w.logger.Debug("warmed %s for %d: %d holidays", country.Name, year, len(holidays))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return stderrors.Join(errs...)
}
