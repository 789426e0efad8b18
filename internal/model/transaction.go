package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the polarity of a transaction.
type TxType string

const (
	TypeInflow  TxType = "inflow"
	TypeExpense TxType = "expense"
)

// Transaction is the canonical unit produced by row normalization.
// Amount is always positive; polarity lives in Type.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TxType
	Original    *RawRow // source row, kept for diagnostics
}

// ProcessedTransaction is a Transaction with its assigned category.
type ProcessedTransaction struct {
	Transaction
	Category Category
}
