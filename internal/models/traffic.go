package models

// DomainMap maps each hosted domain name to the system account that
// owns its logs. Later registry entries for the same domain overwrite
// earlier ones.
type DomainMap map[string]string

// HourlyHits maps hour bucket -> client IP -> request count.
type HourlyHits map[string]map[string]int64

// TrafficReport is the final aggregation result for one run: per
// domain, per hour bucket, per client IP request counts inside Window.
type TrafficReport struct {
	Window  DateWindow
	Domains map[string]HourlyHits
}

// LogTarget is one candidate log file for a domain. Targets are
// derived from the naming convention; whether the file exists is
// checked separately, and a missing target is not an error.
type LogTarget struct {
	Path       string
	Secure     bool // the -ssl_log variant
	Compressed bool // gzip monthly archive
}

// Variant names the convention that produced this target; used as a
// metric label.
func (t LogTarget) Variant() string {
	switch {
	case t.Secure && t.Compressed:
		return "secure_archive"
	case t.Secure:
		return "secure"
	case t.Compressed:
		return "plain_archive"
	default:
		return "plain"
	}
}
