package locators

import (
	"path/filepath"
	"strings"
	"time"

	"loghours/internal/models"
)

const (
	ownerPlaceholder   = "{user}"
	secureSuffix       = "-ssl_log"
	archiveMonthLayout = "Jan-2006"
	archiveSuffix      = ".gz"
)

//go:generate mockgen -source=log_locator.go -destination=./mocks/log_locator_mock.go -package=mocks
type LogLocator interface {
	// Candidates derives the log files that may exist for a domain, in
	// processing order: plain, secure, then the current month's gzip
	// archives of each. now selects the archive month and must be the
	// single instant captured at run start.
	Candidates(domainName, accountOwner string, now time.Time) []models.LogTarget
}

type conventionLocator struct {
	dirTemplate string
}

// NewConventionLocator builds a locator over the fixed per-account
// directory layout. dirTemplate holds a "{user}" placeholder, e.g.
// "/home/{user}/logs/".
func NewConventionLocator(dirTemplate string) LogLocator {
	return &conventionLocator{dirTemplate: dirTemplate}
}

func (l *conventionLocator) Candidates(domainName, accountOwner string, now time.Time) []models.LogTarget {
	dir := strings.ReplaceAll(l.dirTemplate, ownerPlaceholder, accountOwner)
	month := now.Format(archiveMonthLayout)

	return []models.LogTarget{
		{Path: filepath.Join(dir, domainName)},
		{Path: filepath.Join(dir, domainName+secureSuffix), Secure: true},
		{Path: filepath.Join(dir, domainName+"-"+month+archiveSuffix), Compressed: true},
		{Path: filepath.Join(dir, domainName+secureSuffix+"-"+month+archiveSuffix), Secure: true, Compressed: true},
	}
}
