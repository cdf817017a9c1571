package models

// AccessEntry is one matched access-log line. It exists only for the
// duration of processing that line and is never retained.
type AccessEntry struct {
	ClientIP     string
	RawTimestamp string
	Request      string
	StatusCode   int
	ResponseSize string // may be "-" for bodyless responses
	Referrer     string
	UserAgent    string

	// UserAgentFamily is the parsed client family ("Chrome", "curl",
	// ...), kept for diagnostics. Aggregation does not read it.
	UserAgentFamily string
}
