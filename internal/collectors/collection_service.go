package collectors

import (
	"bufio"
	"context"
	"time"

	"loghours/internal/aggregators"
	"loghours/internal/locators"
	"loghours/internal/models"
	"loghours/internal/parsers"
	"loghours/internal/registries"
	"loghours/internal/shared/logfiles"
	"loghours/internal/shared/loggers"
)

const maxLineBytes = 1024 * 1024

// CollectOptions carries the per-run parameters. Now is the single
// instant captured at run start; both the default window and the
// archive month derive from it.
type CollectOptions struct {
	Window        models.DateWindow
	OnlyDomain    string // empty processes every registry domain
	Now           time.Time
	VerboseDomain bool
	VerboseLog    bool
}

//go:generate mockgen -source=collection_service.go -destination=./mocks/collection_service_mock.go -package=mocks
type CollectionService interface {
	// Collect runs the full pipeline: registry -> locator -> line
	// parse -> timestamp normalize -> range filter -> aggregate.
	// Everything below a registry failure is recoverable: missing log
	// files warn and skip, unparseable lines are dropped, and the
	// fullest possible report is always produced.
	Collect(ctx context.Context, opts CollectOptions) (*models.TrafficReport, error)
}

type collectionService struct {
	registry   registries.DomainRegistry
	locator    locators.LogLocator
	parser     parsers.LineParser
	aggregator aggregators.HourlyAggregator
}

func NewCollectionService(
	registry registries.DomainRegistry,
	locator locators.LogLocator,
	parser parsers.LineParser,
	aggregator aggregators.HourlyAggregator,
) CollectionService {
	return &collectionService{
		registry:   registry,
		locator:    locator,
		parser:     parser,
		aggregator: aggregator,
	}
}

func (s *collectionService) Collect(ctx context.Context, opts CollectOptions) (*models.TrafficReport, error) {
	logger := loggers.Ctx(ctx)

	domains, err := s.registry.Load(ctx)
	if err != nil {
		return nil, err
	}

	for domainName, owner := range domains {
		if opts.OnlyDomain != "" && opts.OnlyDomain != domainName {
			continue
		}
		// Cancellation point between domains; within a domain the scan
		// runs to completion.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if opts.VerboseDomain {
			logger.Info().
				Str(loggers.FieldDomain, domainName).
				Str(loggers.FieldOwner, owner).
				Msg("checking logs for domain")
		}

		for _, target := range s.locator.Candidates(domainName, owner, opts.Now) {
			if opts.VerboseLog {
				logger.Info().Str(loggers.FieldLogFile, target.Path).Msg("checking for log file")
			}
			if !logfiles.Exists(target.Path) {
				logger.Warn().Str(loggers.FieldLogFile, target.Path).Msg("log file not found, skipping")
				metricLogFilesMissingTotal.WithLabelValues(target.Variant()).Inc()
				continue
			}
			if err := s.scanLogFile(ctx, domainName, target, opts); err != nil {
				// Unreadable after open; skip the file, keep the run going.
				logger.Error().Err(err).Str(loggers.FieldLogFile, target.Path).
					Msg("failed to process log file, skipping")
			}
		}

		if opts.VerboseDomain {
			logger.Info().Str(loggers.FieldDomain, domainName).
				Msg("finished processing logs for domain")
		}
	}

	return &models.TrafficReport{Window: opts.Window, Domains: s.aggregator.Snapshot()}, nil
}

func (s *collectionService) scanLogFile(ctx context.Context, domainName string, target models.LogTarget, opts CollectOptions) error {
	logger := loggers.Ctx(ctx)
	if opts.VerboseLog {
		logger.Info().Str(loggers.FieldLogFile, target.Path).Msg("processing log file")
	}

	reader, err := logfiles.Open(target.Path)
	if err != nil {
		return err
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		s.recordLine(logger, domainName, scanner.Text(), opts)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	metricLogFilesProcessedTotal.WithLabelValues(target.Variant()).Inc()
	return nil
}

func (s *collectionService) recordLine(logger *loggers.Logger, domainName, line string, opts CollectOptions) {
	metricLogLinesScannedTotal.Inc()

	entry, ok := s.parser.Parse(line)
	if !ok {
		// Foreign or malformed line; tolerated silently.
		return
	}

	parsed, err := s.parser.NormalizeTimestamp(entry.RawTimestamp)
	if err != nil {
		// Matched the grammar but the timestamp is junk. Treated like a
		// grammar mismatch, surfaced only under verbose log mode.
		metricLogLinesBadTimestampTotal.Inc()
		if opts.VerboseLog {
			logger.Debug().Err(err).Str(loggers.FieldDomain, domainName).
				Msg("dropping line with unparseable timestamp")
		}
		return
	}

	if !opts.Window.Contains(parsed.Date) {
		return
	}

	s.aggregator.Record(domainName, parsed.HourBucket, entry.ClientIP)
	metricLogLinesMatchedTotal.Inc()
}
