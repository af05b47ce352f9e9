package dmy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "zero-padded",
			input:    "07.11.2019",
			expected: time.Date(2019, time.November, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unpadded",
			input:    "1.2.2019",
			expected: time.Date(2019, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "end of year",
			input:    "31.12.2024",
			expected: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day",
			input:    "29.02.2020",
			expected: time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Parse(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "not a date",
			input: "hello",
		},
		{
			name:  "two parts",
			input: "07.2019",
		},
		{
			name:  "four parts",
			input: "07.11.20.19",
		},
		{
			name:  "iso order",
			input: "2019-11-07",
		},
		{
			name:  "non-numeric day",
			input: "x.11.2019",
		},
		{
			name:  "day out of range",
			input: "32.01.2019",
		},
		{
			name:  "month out of range",
			input: "01.13.2019",
		},
		{
			name:  "non-existent calendar day",
			input: "31.02.2019",
		},
		{
			name:  "leap day in a common year",
			input: "29.02.2019",
		},
		{
			name:  "year too old",
			input: "01.01.1900",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}
