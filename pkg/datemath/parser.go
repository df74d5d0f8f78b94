// Package datemath normalizes heterogeneous date input into calendar
// dates and renders locale-independent AppleScript date literals.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsable reports that no parsing stage matched the input.
var ErrUnparsable = errors.New("unparsable date")

// isoFormat is the strict calendar-date format tried first.
const isoFormat = "2006-01-02"

// explicitFormats are tried in order after ISO, always in a neutral
// locale, so the same input resolves identically on every host.
// Order pins the month-day/day-month tie-break: "12/25/2024" is
// month-day-year, "25/12/2024" only matches day-month-year.
var explicitFormats = []string{
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

// naturalFormats approximate the host's written date styles. Go has no
// locale-aware date parsing, so this is a fixed best-effort list.
var naturalFormats = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Monday, January 2, 2006",
	"02.01.2006",
}

// Parser converts date strings to absolute time.Time values in a fixed
// timezone, and renders AppleScript date literals.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate normalizes a free-form date string to a calendar date.
// Stages are tried in order until one matches: strict ISO, the explicit
// format list, the natural style list, and finally relative phrases
// such as "tomorrow" or "next friday" evaluated against the current time.
func (p *Parser) ParseDate(text string) (time.Time, error) {
	return p.ParseDateAt(text, time.Now())
}

// ParseDateAt is ParseDate with an explicit reference time for the
// relative-phrase stage.
func (p *Parser) ParseDateAt(text string, baseTime time.Time) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnparsable)
	}

	if t, err := time.ParseInLocation(isoFormat, s, p.location); err == nil {
		return t, nil
	}

	for _, format := range explicitFormats {
		if t, err := time.ParseInLocation(format, s, p.location); err == nil {
			return t, nil
		}
	}

	for _, format := range naturalFormats {
		if t, err := time.ParseInLocation(format, s, p.location); err == nil {
			return t, nil
		}
	}

	if t, err := p.parseRelative(s, baseTime); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
}

// AppleScriptLiteral renders t as an AppleScript date literal in a
// fixed year-month-day format, regardless of host locale.
func (p *Parser) AppleScriptLiteral(t time.Time) string {
	return fmt.Sprintf("date %q", t.In(p.location).Format(isoFormat))
}

// parseRelative converts a relative date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) parseRelative(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: unknown phrase %q", ErrUnparsable, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrUnparsable, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("%w: unknown time unit %q", ErrUnparsable, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnparsable, dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
