package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loghours/internal/app"
	"loghours/internal/models"
	"loghours/internal/shared/configs"
	"loghours/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("loghours", pflag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	daterange := flags.String("daterange", "", "date range as dd/mm/yyyy-dd/mm/yyyy (default: last 24 hours)")
	domain := flags.String("domain", "", "restrict processing to a single domain from the registry")
	verboseDomain := flags.Bool("verbosedomain", false, "show per-domain progress")
	verboseLog := flags.Bool("verboselog", false, "show per-log-file progress")
	verboseAll := flags.Bool("verboseall", false, "show all progress output")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return svcerrors.ExitOK
		}
		// pflag already printed the error and usage text.
		return svcerrors.ExitUsage
	}

	// Capture "now" exactly once; the default window and the archive
	// month both derive from it and stay fixed for the whole run.
	now := time.Now()
	window := models.NewTrailingDayWindow(now)
	if *daterange != "" {
		parsed, err := models.ParseDateWindow(*daterange)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --daterange: %v\n", err)
			fmt.Fprintln(os.Stderr, "Usage of loghours:")
			flags.PrintDefaults()
			return svcerrors.ExitUsage
		}
		window = parsed
	}

	cfg, err := configs.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return svcerrors.ExitFatal
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		return svcerrors.ExitFatal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Window:        window,
		Domain:        *domain,
		Now:           now,
		VerboseDomain: *verboseDomain || *verboseAll,
		VerboseLog:    *verboseLog || *verboseAll,
	}
	if err := application.Run(ctx, opts); err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			fmt.Fprintln(os.Stderr, svcErr.Error())
			return svcErr.ExitCode
		}
		fmt.Fprintln(os.Stderr, err)
		return svcerrors.ExitFatal
	}
	return svcerrors.ExitOK
}
