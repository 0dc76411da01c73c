package importer

import (
	"regexp"
	"strings"
	"time"
)

var (
	monthYearPattern = regexp.MustCompile(`^[A-Za-z]{3} \d{4}$`)
	bareYearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// fallbackDateLayouts are tried in order for inputs that match neither the
// "Mon YYYY" nor the bare-year form.
var fallbackDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"2006/01/02",
}

// NormalizeDate converts a foreign date string to an ISO date. "Mon YYYY"
// maps to the first day of that month, a bare 4-digit year maps to January 1
// of that year, and anything else is handed to a general date parser. Input
// that fails every rule, or is empty, maps to the empty string. The function
// is total: it never returns an error.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if monthYearPattern.MatchString(s) {
		if t, err := time.Parse("Jan 2006", s); err == nil {
			return t.Format("2006-01-02")
		}
		return ""
	}

	if bareYearPattern.MatchString(s) {
		return s + "-01-01"
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}
