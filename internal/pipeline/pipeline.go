// Package pipeline is the entry point for parsing one statement file into
// canonical transactions.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/spendlens-dev/spendlens/internal/adapter"
	"github.com/spendlens-dev/spendlens/internal/id"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/normalize"
)

// ErrUnsupportedFormat indicates a file extension no adapter handles.
// It is distinct from a successful parse that yields zero transactions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Options configure a pipeline run.
type Options struct {
	// DateOrder resolves ambiguous slash dates. Defaults to day-first.
	DateOrder normalize.DateOrder
	// IDs supplies transaction identifiers. Defaults to random UUIDs.
	IDs id.Generator
	// Registry selects adapters by extension. Defaults to the built-ins.
	Registry *adapter.Registry
	// Logger receives per-run diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// Result is the outcome of parsing one statement file. Zero transactions
// with zero error is a valid result; the caller decides how to present it.
type Result struct {
	Transactions []model.Transaction
	Dropped      int
	DropReasons  map[normalize.Reason]int
}

// Process parses the named file content into canonical transactions. Rows
// that fail normalization are dropped and counted; adapter-level failures
// abort the run. Each call is an independent, stateless invocation.
func Process(name string, r io.Reader, opts Options) (*Result, error) {
	registry := opts.Registry
	if registry == nil {
		registry = adapter.DefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	a := registry.ForFile(name)
	if a == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}

	rows, err := a.Rows(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	norm := normalize.New(normalize.Options{
		DateOrder: opts.DateOrder,
		IDs:       opts.IDs,
	})

	result := &Result{DropReasons: make(map[normalize.Reason]int)}
	for i, row := range rows {
		txn, err := norm.Normalize(row)
		if err != nil {
			var rowErr *normalize.RowError
			if errors.As(err, &rowErr) {
				result.Dropped++
				result.DropReasons[rowErr.Reason]++
				logger.Debug().
					Int("row", i+1).
					Str("reason", string(rowErr.Reason)).
					Msg("dropped row")
				continue
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		result.Transactions = append(result.Transactions, txn)
	}

	logger.Info().
		Str("file", name).
		Int("transactions", len(result.Transactions)).
		Int("dropped", result.Dropped).
		Msg("parsed statement")

	return result, nil
}
