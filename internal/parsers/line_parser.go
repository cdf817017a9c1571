package parsers

import (
	"strconv"
	"strings"

	"loghours/internal/models"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse matches one line against the fixed access-log grammar.
	// A non-match returns (nil, false) and is an expected outcome, not
	// an error: access logs routinely contain foreign lines.
	Parse(line string) (*models.AccessEntry, bool)

	// NormalizeTimestamp parses the bracketed timestamp of a matched
	// line into its calendar date and hour bucket.
	NormalizeTimestamp(raw string) (models.ParsedTime, error)
}

type accessLogParser struct{}

func NewAccessLogParser() LineParser {
	return &accessLogParser{}
}

// Grammar, anchored at the line start with trailing content permitted:
//
//	ip SP tok SP tok SP [timestamp] SP "request" SP status SP size SP "referrer" SP "user_agent"
//
// Bracketed and quoted fields must be non-empty and must not contain
// their closing delimiter; status is exactly three digits.
func (p *accessLogParser) Parse(line string) (*models.AccessEntry, bool) {
	s := scanner{rest: line}

	ip, ok := s.token()
	if !ok {
		return nil, false
	}
	// identd and auth user, always "-" in practice; extracted and dropped.
	if !s.space() {
		return nil, false
	}
	if _, ok := s.token(); !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	if _, ok := s.token(); !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	rawTimestamp, ok := s.delimited('[', ']')
	if !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	request, ok := s.delimited('"', '"')
	if !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	status, ok := s.statusCode()
	if !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	size, ok := s.token()
	if !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	referrer, ok := s.delimited('"', '"')
	if !ok {
		return nil, false
	}
	if !s.space() {
		return nil, false
	}
	agent, ok := s.delimited('"', '"')
	if !ok {
		return nil, false
	}

	return &models.AccessEntry{
		ClientIP:        ip,
		RawTimestamp:    rawTimestamp,
		Request:         request,
		StatusCode:      status,
		ResponseSize:    size,
		Referrer:        referrer,
		UserAgent:       agent,
		UserAgentFamily: normalizeUserAgent(agent),
	}, true
}

// normalizeUserAgent parses the user agent to extract the client
// family, or returns the original string if parsing yields nothing.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

type scanner struct {
	rest string
}

// token consumes a non-empty run of non-whitespace bytes.
func (s *scanner) token() (string, bool) {
	end := 0
	for end < len(s.rest) && !isSpace(s.rest[end]) {
		end++
	}
	if end == 0 {
		return "", false
	}
	tok := s.rest[:end]
	s.rest = s.rest[end:]
	return tok, true
}

// space consumes exactly one ' ' separator.
func (s *scanner) space() bool {
	if len(s.rest) == 0 || s.rest[0] != ' ' {
		return false
	}
	s.rest = s.rest[1:]
	return true
}

// delimited consumes open, a non-empty body free of the close byte,
// and close.
func (s *scanner) delimited(open, close byte) (string, bool) {
	if len(s.rest) == 0 || s.rest[0] != open {
		return "", false
	}
	end := strings.IndexByte(s.rest[1:], close)
	if end < 1 { // unterminated or empty body
		return "", false
	}
	body := s.rest[1 : 1+end]
	s.rest = s.rest[2+end:]
	return body, true
}

// statusCode consumes exactly three digits.
func (s *scanner) statusCode() (int, bool) {
	if len(s.rest) < 3 {
		return 0, false
	}
	for i := 0; i < 3; i++ {
		if s.rest[i] < '0' || s.rest[i] > '9' {
			return 0, false
		}
	}
	code, err := strconv.Atoi(s.rest[:3])
	if err != nil {
		return 0, false
	}
	s.rest = s.rest[3:]
	return code, true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
