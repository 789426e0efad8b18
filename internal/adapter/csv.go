package adapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// CSVAdapter parses header-driven delimited text exports. The first row is
// always the header row; blank lines are skipped.
type CSVAdapter struct{}

// Extensions returns the extensions handled by this adapter.
func (a *CSVAdapter) Extensions() []string { return []string{"csv"} }

// Rows reads a CSV export into raw rows keyed by the header row.
func (a *CSVAdapter) Rows(r io.Reader) ([]*model.RawRow, error) {
	cr := csv.NewReader(r)
	// Bank exports frequently pad rows unevenly.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []*model.RawRow
	for _, rec := range records[1:] {
		row := model.NewRawRow()
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row.Set(h, rec[i])
		}
		if row.Len() > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
