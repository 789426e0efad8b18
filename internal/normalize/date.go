package normalize

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate indicates a cell value that cannot be read as a
// calendar date.
var ErrUnparseableDate = errors.New("unparseable date")

// DateOrder selects how ambiguous slash dates like "04/01/2025" are read.
type DateOrder int

const (
	// DayFirst reads "04/01/2025" as 4 January 2025.
	DayFirst DateOrder = iota
	// MonthFirst reads "04/01/2025" as 1 April 2025.
	MonthFirst
)

// serialEpoch is day zero for spreadsheet serial dates. The historical
// off-by-two (the Lotus 1900 leap-year bug plus 1-based counting) is
// applied in fromSerial.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// slashDate matches a D/M/YYYY (or M/D/YYYY) prefix; a trailing
// time-of-day suffix is ignored.
var slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)

// fallbackLayouts are tried in order for strings that do not match the
// slash pattern.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate converts a raw cell value into a calendar date. Numbers are
// spreadsheet serial day counts; strings are tried against the slash
// pattern first, then the fallback layouts. Time-of-day, if present, is
// discarded.
func ParseDate(value any, order DateOrder) (time.Time, error) {
	switch v := value.(type) {
	case float64:
		return fromSerial(v), nil
	case int:
		return fromSerial(float64(v)), nil
	case string:
		return parseDateString(v, order)
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), nil
	case nil:
		return time.Time{}, ErrUnparseableDate
	default:
		return parseDateString(cellText(value), order)
	}
}

// fromSerial converts a spreadsheet serial day count. Fractional day parts
// (time-of-day) are dropped.
func fromSerial(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(serial)-2)
}

func parseDateString(s string, order DateOrder) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}

	if m := slashDate.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		day, month := first, second
		if order == MonthFirst {
			day, month = second, first
		}

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components (31/02 becomes
		// 3 March); treat that as an invalid calendar date.
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return time.Time{}, ErrUnparseableDate
		}
		return t, nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}
