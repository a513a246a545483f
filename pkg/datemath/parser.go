package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser turns due-date input into calendar days in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty timezone means the process local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDueDate accepts YYYY-MM-DD, RFC3339, or a relative phrase
// ("today", "in 3 days", "next friday") and returns midnight of that day.
func (p *Parser) ParseDueDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrEmptyDate
	}

	if t, err := time.ParseInLocation(DateLayout, input, p.location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return p.StartOfDay(t), nil
	}

	return p.Parse(input, now)
}

// Parse converts a relative date string to an absolute day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration %q", ErrUnrecognizedDate, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid amount %q", ErrUnrecognizedDate, matches[1])
	}

	var days, months, limit int
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		days, limit = amount, MaxRelativeYears*366
	case strings.HasPrefix(unit, "week"):
		days, limit = amount*7, MaxRelativeYears*53
	default:
		months, limit = amount, MaxRelativeYears*12
	}
	if amount > limit {
		return time.Time{}, fmt.Errorf("%w: %q is more than %d years ahead", ErrUnrecognizedDate, relative, MaxRelativeYears)
	}
	return p.StartOfDay(baseTime.AddDate(0, months, days)), nil
}

// parseNextWeekday handles patterns like "next monday". The same weekday means a week ahead.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognizedDate, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// BeforeDay reports whether t falls on a calendar day strictly before now's day.
// Any time later on the same day is never before it.
func (p *Parser) BeforeDay(t, now time.Time) bool {
	return p.StartOfDay(t).Before(p.StartOfDay(now))
}

// Format renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(p.location).Format(DateLayout)
}

// FormatLong renders t as e.g. "Friday, January 5, 2024".
func (p *Parser) FormatLong(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(p.location).Format(LongLayout)
}
