// Package summary reduces classified transactions into aggregate statistics.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// noneCategory is reported when no expenses exist to rank.
const noneCategory = "None"

// CategoryAmount is one entry in the ranked expenses-by-category list.
type CategoryAmount struct {
	Name   model.Category
	Amount decimal.Decimal
}

// MonthPoint aggregates one calendar month. Statements spanning multiple
// years collapse into the same 12 buckets; there is no year axis.
type MonthPoint struct {
	Month   string // "Jan" .. "Dec"
	Expense decimal.Decimal
	Inflow  decimal.Decimal
}

// Insights are headline figures derived from the aggregate.
type Insights struct {
	TopCategory          string
	HighestSpendingMonth string // full month name, e.g. "January"
	NetSavings           decimal.Decimal
	SavingsRate          float64 // percent of inflow kept; 0 when inflow is 0
}

// Summary is the aggregate view-model for one statement.
type Summary struct {
	TotalInflow        decimal.Decimal
	TotalExpense       decimal.Decimal
	ExpensesByCategory []CategoryAmount
	Monthly            [12]MonthPoint
	Insights           Insights
}

// Build reduces classified transactions into a Summary. It is a pure
// full recomputation: calling it twice on the same input yields identical
// results.
func Build(txns []model.ProcessedTransaction) Summary {
	var s Summary
	s.TotalInflow = decimal.Zero
	s.TotalExpense = decimal.Zero

	byCategory := make(map[model.Category]decimal.Decimal)
	var categoryOrder []model.Category

	for i := range s.Monthly {
		s.Monthly[i] = MonthPoint{
			Month:   time.Month(i + 1).String()[:3],
			Expense: decimal.Zero,
			Inflow:  decimal.Zero,
		}
	}

	for _, t := range txns {
		m := int(t.Date.Month()) - 1
		switch t.Type {
		case model.TypeInflow:
			s.TotalInflow = s.TotalInflow.Add(t.Amount)
			s.Monthly[m].Inflow = s.Monthly[m].Inflow.Add(t.Amount)
		case model.TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.Monthly[m].Expense = s.Monthly[m].Expense.Add(t.Amount)
			if _, seen := byCategory[t.Category]; !seen {
				categoryOrder = append(categoryOrder, t.Category)
			}
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	// Rank categories by spend, descending. The stable sort keeps ties in
	// first-encountered order.
	ranked := make([]CategoryAmount, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		ranked = append(ranked, CategoryAmount{Name: c, Amount: byCategory[c]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	s.ExpensesByCategory = ranked

	s.Insights = buildInsights(s)
	return s
}

func buildInsights(s Summary) Insights {
	top := noneCategory
	if len(s.ExpensesByCategory) > 0 {
		top = string(s.ExpensesByCategory[0].Name)
	}

	// First bucket wins ties, so an all-zero series reports January.
	peak := 0
	for i := 1; i < len(s.Monthly); i++ {
		if s.Monthly[i].Expense.GreaterThan(s.Monthly[peak].Expense) {
			peak = i
		}
	}

	net := s.TotalInflow.Sub(s.TotalExpense)
	rate := 0.0
	if s.TotalInflow.IsPositive() {
		rate, _ = net.Div(s.TotalInflow).Mul(decimal.NewFromInt(100)).Float64()
	}

	return Insights{
		TopCategory:          top,
		HighestSpendingMonth: time.Month(peak + 1).String(),
		NetSavings:           net,
		SavingsRate:          rate,
	}
}
