package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"loghours/internal/aggregators"
	"loghours/internal/collectors"
	"loghours/internal/locators"
	"loghours/internal/models"
	"loghours/internal/parsers"
	"loghours/internal/registries"
	"loghours/internal/reporters"
	"loghours/internal/shared/configs"
	"loghours/internal/shared/loggers"
	"loghours/internal/shared/metrics"
	"loghours/internal/shared/ulid"

	"github.com/mattn/go-isatty"
)

// Options carries the CLI-derived parameters for one run.
type Options struct {
	Window        models.DateWindow
	Domain        string
	Now           time.Time
	VerboseDomain bool
	VerboseLog    bool
}

// App holds all application dependencies for one run.
type App struct {
	config   *configs.Config
	logger   loggers.Logger
	service  collectors.CollectionService
	reporter reporters.Reporter
	out      io.Writer
}

// New creates and wires an App instance.
func New(config *configs.Config) (*App, error) {
	logger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = logger.With().
		Str(loggers.FieldApp, "loghours").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	registry := registries.NewFileDomainRegistry(config.Registry.Path)
	locator := locators.NewConventionLocator(config.AccessLogs.DirTemplate)
	parser := parsers.NewAccessLogParser()
	aggregator := aggregators.NewHourlyAggregator()
	service := collectors.NewCollectionService(registry, locator, parser, aggregator)

	reporter := reporters.NewTextReporter(isatty.IsTerminal(os.Stdout.Fd()))

	return &App{
		config:   config,
		logger:   logger,
		service:  service,
		reporter: reporter,
		out:      os.Stdout,
	}, nil
}

// Run executes one collection pass and prints the report.
func (app *App) Run(ctx context.Context, opts Options) error {
	ctx = app.logger.WithContext(ctx)

	app.logger.Info().
		Str(loggers.FieldWindowStart, opts.Window.Start.String()).
		Str(loggers.FieldWindowEnd, opts.Window.End.String()).
		Msg("aggregating hourly request counts per domain")

	report, err := app.service.Collect(ctx, collectors.CollectOptions{
		Window:        opts.Window,
		OnlyDomain:    opts.Domain,
		Now:           opts.Now,
		VerboseDomain: opts.VerboseDomain,
		VerboseLog:    opts.VerboseLog,
	})
	if err != nil {
		return err
	}

	app.logger.Info().Msg("hourly request count per domain within the specified date range")
	app.reporter.Render(app.out, report)

	if app.config.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(app.config.Metrics.TextfilePath); err != nil {
			// Metrics export is best-effort; the report already printed.
			app.logger.Error().Err(err).Msg("failed to write metrics textfile")
		}
	}

	return nil
}
