package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, d)
	assert.Equal(t, "2024-03-01", d.String())
	assert.Equal(t, time.Friday, d.Weekday())

	for _, bad := range []string{"", "2024-13-01", "01/03/2024", "2024-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateFromParts(t *testing.T) {
	d, err := DateFromParts(29, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)

	tests := []struct{ day, month, year int64 }{
		{29, 2, 2023},
		{31, 4, 2024},
		{0, 1, 2024},
		{1, 13, 2024},
		{1, 1, 0},
		{1, 1, 1 << 40},
	}
	for _, tt := range tests {
		_, err := DateFromParts(tt.day, tt.month, tt.year)
		var invalid *InvalidDateError
		assert.True(t, errors.As(err, &invalid), "%v", tt)
	}
}

func TestDateOfIgnoresTime(t *testing.T) {
	a := DateOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	b := DateOf(time.Date(2024, 3, 1, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, a, b)
	assert.False(t, a.IsZero())
	assert.True(t, Date{}.IsZero())
}
