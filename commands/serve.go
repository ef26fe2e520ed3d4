package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"festivos/config"
	"festivos/controllers"
	"festivos/jobs"
	"festivos/middleware"
	"festivos/routes"
	"festivos/services"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP API and the cache warm-up job",
		Aliases: []string{"s"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := newLogger(opts.cfg)
			defer log.Sync()

			source, err := openSource(opts)
			if err != nil {
				return err
			}
			holidays, closeCache := newHolidayService(ctx, opts, source, log)
			defer closeCache()

			warmer := services.NewCacheWarmer(services.CacheWarmerOptions{
				Countries: source,
				Holidays:  holidays,
				Logger:    log,
			})
			c := cron.New()
			if err := jobs.InitCronJobs(ctx, c, opts.cfg.WarmCron, warmer, log); err != nil {
				return fmt.Errorf("cron: %w", err)
			}
			defer c.Stop()
			go jobs.WarmJob(ctx, warmer, log, time.Now)()

			router := config.InitApp(opts.cfg)
			router.Use(middleware.RequestID(log))
			routes.SetupRoutes(router,
				controllers.NewHolidayController(holidays, log),
				controllers.NewCatalogController(source, log),
			)

			srv := &http.Server{
				Addr:    ":" + opts.cfg.Port,
				Handler: router,
			}
			serveErr := make(chan error, 1)
			go func() {
				log.Info("Server starting on port %s...", opts.cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err := <-serveErr:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
