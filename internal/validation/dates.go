package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errDateFormat = errors.New("date must be D/M/YYYY")

// isoLayout dates (YYYY-MM-DD) are accepted as well.
const isoLayout = "2006-01-02"

// ParseDMY parses a "D/M/YYYY" date into midnight UTC of that calendar day.
// Impossible calendar dates such as 31/2/2026 are rejected.
func ParseDMY(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(isoLayout, value); err == nil {
		return t, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", errDateFormat, value)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", errDateFormat, value)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", errDateFormat, value)
	}
	return t, nil
}

// FormatDMY renders t as "D/M/YYYY" without zero padding.
func FormatDMY(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// DateOf drops the time component of t, keeping the calendar day of t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
