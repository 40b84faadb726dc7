package util

import "time"

const (
	// DateFormat is the standard date format for simulation records.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard datetime format for simulation records.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// FormatDate formats a time as a date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatDateTime formats a time as a datetime string.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// ParseDate parses a date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// CalculateAge calculates age in years from date of birth.
func CalculateAge(dob time.Time, asOf time.Time) int {
	years := asOf.Year() - dob.Year()
	if asOf.YearDay() < dob.YearDay() {
		years--
	}
	return years
}

// IsNightHours reports whether the hour falls in the 22:00-05:59 window
// used by the priority scorer.
func IsNightHours(t time.Time) bool {
	h := t.Hour()
	return h >= 22 || h < 6
}

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
