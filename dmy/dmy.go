package dmy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when the input is not a valid day-month-year date.
var ErrInvalidDate = errors.New("invalid day-month-year date")

const datePartCount = 3

// Parse interprets s as a dot-separated day-month-year date, e.g. "7.11.2019"
// or "07.11.2019", and returns midnight UTC of that day. The year must be
// after 1900.
func Parse(s string) (time.Time, error) {
	parts := strings.Split(s, ".")
	if len(parts) != datePartCount {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	day, dayErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	year, yearErr := strconv.Atoi(parts[2])

	if dayErr != nil || monthErr != nil || yearErr != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if day < 1 || month < 1 || month > 12 || year <= 1900 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range values (32.01 becomes 01.02);
	// a changed day or month means the input named a non-existent date.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return date, nil
}
