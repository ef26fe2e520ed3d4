package commands

import (
	"context"

	"festivos/config"
	"festivos/services"
	"festivos/services/logger"
)

// ruleSource is what the commands need from a store
type ruleSource interface {
	services.RuleStore
	services.Catalog
}

func newLogger(cfg config.Config) *logger.DefaultLogger {
	return logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
}

// openSource loads the rule file when one is given and connects to the database otherwise
func openSource(opts *options) (ruleSource, error) {
	if opts.rulesFile != "" {
		store, err := services.LoadFileRuleStore(opts.rulesFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	db, err := config.ConnectDB(opts.cfg)
	if err != nil {
		return nil, err
	}
	return services.NewGormRuleStore(db), nil
}

func noop() {}

// newCache picks the resolution cache for cfg.CacheBackend. An unreachable
// redis degrades to the in-process cache. The returned func releases the backend.
func newCache(ctx context.Context, cfg config.Config, log logger.Logger) (services.ResolutionCache, func()) {
	switch cfg.CacheBackend {
	case "none":
		return services.NoopResolutionCache{}, noop
	case "redis":
		rdb, err := config.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Error("redis unavailable, using memory cache: %v", err)
			return services.NewMemoryResolutionCache(), noop
		}
		return services.NewRedisResolutionCache(rdb, cfg.CacheTTL), func() {
			if err := rdb.Close(); err != nil {
				log.Error("closing redis: %v", err)
			}
		}
	default:
		return services.NewMemoryResolutionCache(), noop
	}
}

func newHolidayService(ctx context.Context, opts *options, source ruleSource, log logger.Logger) (*services.HolidayService, func()) {
	cache, closeCache := newCache(ctx, opts.cfg, log)
	return services.NewHolidayService(services.HolidayServiceOptions{
		Store:  source,
		Cache:  cache,
		Logger: log,
	}), closeCache
}
