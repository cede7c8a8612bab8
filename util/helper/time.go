package helper_util

import "time"

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// FormatDate renders a backend timestamp as a calendar date. Unparseable
// input passes through unchanged so a display glitch never hides the value.
func FormatDate(s string) string {
	if s == "" {
		return "-"
	}
	t, err := ParseTime(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}
