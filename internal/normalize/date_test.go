package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_SpreadsheetSerial(t *testing.T) {
	// Serial 45660 = 1900-01-01 + (45660-2) days = 2025-01-03.
	got, err := ParseDate(45660.0, DayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 3), got)
}

func TestParseDate_SerialFractionDiscarded(t *testing.T) {
	got, err := ParseDate(45660.75, DayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 3), got)
}

func TestParseDate_SerialInt(t *testing.T) {
	got, err := ParseDate(45660, DayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 3), got)
}

func TestParseDate_SlashDayFirst(t *testing.T) {
	// 04/01/2025 is 4 January, not 1 April.
	got, err := ParseDate("04/01/2025", DayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 4), got)
}

func TestParseDate_SlashMonthFirst(t *testing.T) {
	got, err := ParseDate("04/01/2025", MonthFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 1), got)
}

func TestParseDate_SlashWithTimeSuffix(t *testing.T) {
	got, err := ParseDate("04/01/2025 7:50:49", DayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 4), got)
}

func TestParseDate_FallbackLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-04", date(2025, time.January, 4)},
		{"2025-01-04T13:22:01Z", date(2025, time.January, 4)},
		{"2025-01-04 13:22:01", date(2025, time.January, 4)},
		{"2025/01/04", date(2025, time.January, 4)},
		{"Jan 4, 2025", date(2025, time.January, 4)},
		{"4 Jan 2025", date(2025, time.January, 4)},
		{"January 4, 2025", date(2025, time.January, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, DayFirst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []any{
		"not a date",
		"",
		"   ",
		"31/02/2025", // February 31st is not a calendar date
		"04/13/2025", // month 13 under day-first reading
		nil,
	}
	for _, input := range inputs {
		_, err := ParseDate(input, DayFirst)
		assert.ErrorIs(t, err, ErrUnparseableDate, "input: %v", input)
	}
}

func TestParseDate_MonthFirstInvalidDay(t *testing.T) {
	// 13/04/2025 read month-first would be month 13.
	_, err := ParseDate("13/04/2025", MonthFirst)
	assert.ErrorIs(t, err, ErrUnparseableDate)
}
