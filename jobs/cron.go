package jobs

import (
	"context"
	"time"

	"festivos/services/logger"

	"github.com/robfig/cron/v3"
)

// Warmer populates the resolution cache for the given years
type Warmer interface {
	Warm(ctx context.Context, years ...int) error
}

// WarmYears returns the years worth preparing at instant now: the current one and the next
func WarmYears(now time.Time) []int {
	return []int{now.Year(), now.Year() + 1}
}

// WarmJob is the body of the warm-up cron entry. Cancelling ctx stops a run in progress.
func WarmJob(ctx context.Context, warmer Warmer, log logger.Logger, now func() time.Time) func() {
	return func() {
		years := WarmYears(now())
		log.Info("warming holiday cache for %v", years)
		if err := warmer.Warm(ctx, years...); err != nil {
			log.Error("warming holiday cache: %v", err)
		}
	}
}

// InitCronJobs registers the cache warm-up on spec and starts the scheduler
func InitCronJobs(ctx context.Context, c *cron.Cron, spec string, warmer Warmer, log logger.Logger) error {
	if log == nil {
		log = logger.NewNopLogger()
	}

	if _, err := c.AddFunc(spec, WarmJob(ctx, warmer, log, time.Now)); err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized (%s)", spec)
	return nil
}
