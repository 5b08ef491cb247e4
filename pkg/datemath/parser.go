package datemath

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnparseable is returned when no known layout matches a timestamp.
var ErrUnparseable = errors.New("datemath: unparseable timestamp")

// Layouts tried in order. Values without an offset are read in the parser's location.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Parser converts calendar timestamps to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// UTC returns a parser that reads naive timestamps as UTC.
func UTC() *Parser {
	return &Parser{location: time.UTC}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse reads an absolute timestamp such as "2026-02-23T16:00:00Z" or "2026-02-23".
func (p *Parser) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrUnparseable
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, p.location)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, value)
}

// FromUnixMillis converts epoch milliseconds, rejecting NaN and infinities.
func FromUnixMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, ErrUnparseable
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// CeilDays returns the number of whole days from now until t, rounded up.
// A due time 25 hours away is 2 days away; one 3 hours in the past is 0.
func CeilDays(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// AtHour returns t's calendar day at the given hour in the parser's timezone.
func (p *Parser) AtHour(t time.Time, hour int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, p.location)
}

// CeilHalfHour rounds t up to the next :00 or :30 boundary.
func CeilHalfHour(t time.Time) time.Time {
	rounded := t.Truncate(30 * time.Minute)
	if rounded.Equal(t) {
		return t
	}
	return rounded.Add(30 * time.Minute)
}
