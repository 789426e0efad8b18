package normalize

import "strings"

// Candidate header names per semantic role, matched case-insensitively
// against trimmed headers. Bank exports disagree wildly on naming; these
// lists cover the layouts seen in real statements (including Moniepoint
// and other NGN exports with settlement debit/credit pairs).
var (
	dateHeaders        = []string{"date", "transaction date", "posting date", "timestamp", "value date"}
	descriptionHeaders = []string{"description", "desc", "details", "memo", "narration", "transaction description", "remarks"}
	amountHeaders      = []string{"amount", "value", "transaction amount", "transaction amount (ngn)"}
	debitHeaders       = []string{"debit", "dr", "settlement debit", "settlement debit (ngn)"}
	creditHeaders      = []string{"credit", "cr", "settlement credit", "settlement credit (ngn)"}
)

// Columns holds the resolved source header for each semantic role.
// An empty string means no column matched the role.
type Columns struct {
	Date        string
	Description string
	Amount      string
	Debit       string
	Credit      string
}

// ResolveColumns maps row headers to semantic roles. The first header in
// declaration order wins when several columns qualify for the same role.
func ResolveColumns(headers []string) Columns {
	var c Columns
	for _, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case c.Date == "" && contains(dateHeaders, key):
			c.Date = h
		case c.Description == "" && contains(descriptionHeaders, key):
			c.Description = h
		case c.Amount == "" && contains(amountHeaders, key):
			c.Amount = h
		case c.Debit == "" && contains(debitHeaders, key):
			c.Debit = h
		case c.Credit == "" && contains(creditHeaders, key):
			c.Credit = h
		}
	}
	return c
}

// Usable reports whether the resolved columns can yield a transaction:
// date and description are mandatory, plus either a single amount column
// or a debit/credit pair.
func (c Columns) Usable() bool {
	if c.Date == "" || c.Description == "" {
		return false
	}
	return c.Amount != "" || (c.Debit != "" && c.Credit != "")
}

func contains(candidates []string, key string) bool {
	for _, c := range candidates {
		if c == key {
			return true
		}
	}
	return false
}
