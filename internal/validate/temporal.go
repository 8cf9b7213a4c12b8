// internal/validate/temporal.go
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date and time-of-day parsing with a two-mode failure contract: input that
// does not match the expected pattern at all yields (nil, nil), while input
// that matches the pattern but carries impossible values yields an error.
// Callers report the two modes with distinct failure kinds.

var (
	dateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?$`)
)

// ParseDate parses "YYYY-MM-DD". The returned time is midnight UTC.
func ParseDate(s string) (*time.Time, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d is out of range", month)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); a day that
	// round-trips differently was impossible.
	if d.Day() != day || d.Month() != time.Month(month) {
		return nil, fmt.Errorf("day %d is out of range for month %d", day, month)
	}
	return &d, nil
}

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (*TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}

	if hour > 23 {
		return nil, fmt.Errorf("hour %d is out of range", hour)
	}
	if minute > 59 {
		return nil, fmt.Errorf("minute %d is out of range", minute)
	}
	if second > 59 {
		return nil, fmt.Errorf("second %d is out of range", second)
	}
	return &TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}
