package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Resolver converts relative date phrases to absolute time.Time values.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a date resolver for the given IANA timezone string,
// e.g. "Europe/Berlin". An empty timezone means UTC.
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// weekdayNames is scanned in order; index matches time.Weekday.
var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// ResolveRelative maps a phrase like "next friday" or "this monday" to a
// concrete date relative to now.
//
// If the phrase names a weekday, the result is the next occurrence of that
// weekday. A zero offset (now already is that weekday) resolves to next week,
// never today. "next" pushes the result out one more week. A phrase with no
// weekday name defaults to exactly 7 days from now. The time of day is kept
// as-is from now.
func (r *Resolver) ResolveRelative(phrase string, now time.Time) time.Time {
	now = now.In(r.location)
	lower := strings.ToLower(phrase)

	target, found := findWeekday(lower)
	if !found {
		return now.AddDate(0, 0, 7)
	}

	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days <= 0 {
		days = 7
	}
	if strings.Contains(lower, "next") {
		days += 7
	}

	return now.AddDate(0, 0, days)
}

func findWeekday(lower string) (time.Weekday, bool) {
	for i, name := range weekdayNames {
		if strings.Contains(lower, name) {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
