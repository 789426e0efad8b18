// Package normalize turns raw statement rows into canonical transactions.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/id"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// unknownDescription is substituted when the description cell is blank.
const unknownDescription = "Unknown"

// Reason classifies why a row was rejected.
type Reason string

const (
	ReasonMissingColumns Reason = "missing date or description column"
	ReasonBadDate        Reason = "unparseable date"
	ReasonBadAmount      Reason = "no usable amount"
)

// RowError reports a rejected row. Row errors are recoverable: the caller
// drops the row and continues.
type RowError struct {
	Reason Reason
}

func (e *RowError) Error() string {
	return string(e.Reason)
}

// Options configure a Normalizer.
type Options struct {
	// DateOrder resolves ambiguous slash dates. Defaults to DayFirst.
	DateOrder DateOrder
	// IDs supplies transaction identifiers. Defaults to id.Random().
	IDs id.Generator
}

// Normalizer converts raw rows into transactions.
type Normalizer struct {
	order DateOrder
	ids   id.Generator
}

// New creates a Normalizer.
func New(opts Options) *Normalizer {
	if opts.IDs == nil {
		opts.IDs = id.Random()
	}
	return &Normalizer{order: opts.DateOrder, ids: opts.IDs}
}

// Normalize converts one raw row into a Transaction, or returns a
// *RowError describing why the row is unusable. Every returned
// transaction has a positive amount and exactly one polarity.
func (n *Normalizer) Normalize(row *model.RawRow) (model.Transaction, error) {
	cols := ResolveColumns(row.Headers())
	if cols.Date == "" || cols.Description == "" {
		return model.Transaction{}, &RowError{Reason: ReasonMissingColumns}
	}

	dateVal, _ := row.Get(cols.Date)
	date, err := ParseDate(dateVal, n.order)
	if err != nil {
		return model.Transaction{}, &RowError{Reason: ReasonBadDate}
	}

	amount, txType, ok := resolveAmount(row, cols)
	if !ok {
		return model.Transaction{}, &RowError{Reason: ReasonBadAmount}
	}

	desc := strings.TrimSpace(cellString(row, cols.Description))
	if desc == "" {
		desc = unknownDescription
	}

	return model.Transaction{
		ID:          n.ids.Next(),
		Date:        date,
		Description: desc,
		Amount:      amount,
		Type:        txType,
		Original:    row,
	}, nil
}

// resolveAmount determines amount and polarity. A debit/credit column pair
// takes precedence over a single amount column.
func resolveAmount(row *model.RawRow, cols Columns) (decimal.Decimal, model.TxType, bool) {
	if cols.Debit != "" && cols.Credit != "" {
		debit := parseSettlement(cellString(row, cols.Debit))
		credit := parseSettlement(cellString(row, cols.Credit))
		switch {
		case credit.IsPositive():
			return credit, model.TypeInflow, true
		case debit.IsPositive():
			return debit, model.TypeExpense, true
		default:
			return decimal.Zero, "", false
		}
	}

	if cols.Amount != "" {
		raw, _ := row.Get(cols.Amount)
		amount, err := parseAmount(raw)
		if err != nil {
			return decimal.Zero, "", false
		}
		if amount.IsNegative() {
			return amount.Abs(), model.TypeExpense, true
		}
		// A zero amount is accepted here as an inflow. The debit/credit
		// path above rejects both-zero rows instead; see DESIGN.md.
		return amount, model.TypeInflow, true
	}

	return decimal.Zero, "", false
}

// parseSettlement parses a debit or credit cell after stripping thousands
// separators. Unparseable cells count as zero.
func parseSettlement(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// amountJunk matches everything except digits, signs and decimal points.
var amountJunk = regexp.MustCompile(`[^0-9.\-+]`)

// parseAmount parses a single-column amount value. Numeric cells are used
// as-is; strings are cleaned of separators and currency symbols first.
func parseAmount(value any) (decimal.Decimal, error) {
	if f, ok := value.(float64); ok {
		return decimal.NewFromFloat(f), nil
	}

	s := strings.ReplaceAll(cellText(value), ",", "")
	s = amountJunk.ReplaceAllString(s, "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// cellString returns the string form of a cell.
func cellString(row *model.RawRow, header string) string {
	v, _ := row.Get(header)
	return cellText(v)
}

// cellText converts an untyped cell to text. Floats use the shortest
// round-trip form so "1000" stays "1000" rather than "1000.000000".
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
