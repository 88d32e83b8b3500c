package domain

import "time"

// deadlineLayouts are the date formats accepted for the deadline field.
// The stored value is the original string, not the parsed time.
var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDeadline reports whether s is a parseable calendar date and returns
// the parsed value for callers that need it.
func ParseDeadline(s string) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
