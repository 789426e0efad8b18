package adapter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// HeaderLocator finds the real header row inside a sheet that may carry
// title or metadata rows above the table. Implementations return the
// zero-based row index, or -1 if no header row was found.
type HeaderLocator interface {
	Locate(rows [][]string) int
}

// KeywordHeaderLocator matches the first row whose joined cell text
// contains "date", a description-ish term, and an amount/debit/credit
// term, case-insensitively.
type KeywordHeaderLocator struct{}

// Locate scans rows top-down for the keyword triple.
func (KeywordHeaderLocator) Locate(rows [][]string) int {
	for i, row := range rows {
		text := strings.ToLower(strings.Join(row, "|"))
		if !strings.Contains(text, "date") {
			continue
		}
		if !containsAny(text, "narration", "description") {
			continue
		}
		if !containsAny(text, "debit", "credit", "amount") {
			continue
		}
		return i
	}
	return -1
}

// XLSXAdapter reads the first sheet of a spreadsheet workbook.
type XLSXAdapter struct {
	locator HeaderLocator
}

// NewXLSXAdapter creates an XLSXAdapter. A nil locator uses
// KeywordHeaderLocator.
func NewXLSXAdapter(locator HeaderLocator) *XLSXAdapter {
	if locator == nil {
		locator = KeywordHeaderLocator{}
	}
	return &XLSXAdapter{locator: locator}
}

// Extensions returns the extensions handled by this adapter.
func (a *XLSXAdapter) Extensions() []string { return []string{"xlsx", "xls"} }

// Rows reads the first sheet into raw rows. Cells are read raw so date
// serials stay numeric; if the locator finds no header row, the first row
// of the sheet is used as a best-effort fallback.
func (a *XLSXAdapter) Rows(r io.Reader) ([]*model.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headerIdx := a.locator.Locate(rows)
	if headerIdx < 0 {
		headerIdx = 0
	}

	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []*model.RawRow
	for _, rec := range rows[headerIdx+1:] {
		row := model.NewRawRow()
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row.Set(h, cellValue(rec[i]))
		}
		if row.Len() > 0 {
			out = append(out, row)
		}
	}
	return out, nil
}

// cellValue surfaces numeric-looking raw cells as float64 so date serials
// reach the numeric branch of the date normalizer. Reading cells as
// pre-formatted strings instead is a known failure mode: serials arrive
// as locale-formatted dates the normalizer cannot trust.
func cellValue(raw string) any {
	if raw == "" {
		return ""
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || strings.ContainsAny(raw, "xXnNiI") {
		// Reject hex/Inf/NaN forms that ParseFloat accepts.
		return raw
	}
	return f
}

func containsAny(text string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
