package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// ErrNotArray indicates a JSON payload that is not an array of row objects.
var ErrNotArray = errors.New("JSON payload must be an array of transactions")

// JSONAdapter parses a JSON array of row objects. Object key order is
// preserved via token decoding so first-match column resolution behaves
// the same as with the other adapters.
type JSONAdapter struct{}

// Extensions returns the extensions handled by this adapter.
func (a *JSONAdapter) Extensions() []string { return []string{"json"} }

// Rows decodes the payload into raw rows. A non-array payload is a hard
// error, not an empty result.
func (a *JSONAdapter) Rows(r io.Reader) ([]*model.RawRow, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotArray
	}

	var rows []*model.RawRow
	for dec.More() {
		row, err := decodeRow(dec)
		if err != nil {
			return nil, err
		}
		if row.Len() > 0 {
			rows = append(rows, row)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	return rows, nil
}

// decodeRow reads one object from the array, keeping key order.
func decodeRow(dec *json.Decoder) (*model.RawRow, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading JSON row: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("JSON rows must be objects, got %v", tok)
	}

	row := model.NewRawRow()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading JSON key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("reading JSON key: unexpected token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading JSON value for %q: %w", key, err)
		}
		row.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading JSON row: %w", err)
	}
	return row, nil
}
