// Rostersearch sorts a roster of people and searches it by last name, or by
// last and first name.
//
//	XPARTIAL_ROSTER  CSV file of last,first,age rows, the embedded roster if unset
//	XPARTIAL_LAST    last name to search, the sorted roster is listed if unset
//	XPARTIAL_FIRST   optional first name
//	XLOG_LVL         DEBUG, INFO, WARN or ERROR
package main

import (
	"context"
	"os"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xpartial/xlog"
)

type config struct {
	roster string
	last   string
	first  string
}

func loadConfig() *config {
	return &config{
		roster: strings.TrimSpace(os.Getenv("XPARTIAL_ROSTER")),
		last:   strings.TrimSpace(os.Getenv("XPARTIAL_LAST")),
		first:  strings.TrimSpace(os.Getenv("XPARTIAL_FIRST")),
	}
}

func newLogger(lc fx.Lifecycle) xlog.XLogger {
	logger := xlog.NewXLogger(
		xlog.WithXLoggerEncoder(xlog.PlainText),
		xlog.WithXLoggerWriter(xlog.StdErr),
	)
	lc.Append(fx.StopHook(func() {
		// Sync of a terminal stderr fails with EINVAL on linux.
		_ = logger.Sync()
	}))
	return logger
}

func newRoster(cfg *config, logger xlog.XLogger) ([]person, error) {
	people, err := loadRoster(cfg)
	if people == nil && err != nil {
		return nil, err
	}
	for _, rowErr := range multierr.Errors(err) {
		logger.ErrorStack(rowErr, "skipped roster row")
	}
	logger.Debug("roster loaded",
		zap.String("roster", lo.Ternary(len(cfg.roster) == 0, "embedded", cfg.roster)),
		zap.Int("people", len(people)),
		zap.Int("skipped", len(multierr.Errors(err))),
	)
	return people, nil
}

func runSearch(cfg *config, people []person, logger xlog.XLogger) {
	log := logger.Named("search")
	if len(cfg.last) == 0 {
		log.Info("roster", zap.Strings("people", lo.Map(people, func(p person, _ int) string {
			return p.String()
		})))
		return
	}
	matches := search(people, cfg.last, cfg.first)
	for _, p := range matches {
		log.Info("match", zap.Stringer("person", p))
	}
	log.Info("search done",
		zap.String("last", cfg.last),
		zap.String("first", cfg.first),
		zap.Int("matches", len(matches)),
		zap.Int("people", len(people)),
	)
}

func newApp(opts ...fx.Option) *fx.App {
	return fx.New(
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Provide(loadConfig, newLogger, newRoster),
		fx.Options(opts...),
		fx.Invoke(runSearch),
	)
}

// run starts and stops the app right away, the search runs while it is
// being constructed. fx has already logged any returned error.
func run(app *fx.App) error {
	if err := app.Err(); err != nil {
		return err
	}
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

func main() {
	if err := run(newApp()); err != nil {
		os.Exit(1)
	}
}
