// Package classify assigns spending categories via ordered keyword rules.
package classify

import (
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Rule pairs a category with its keyword list. Rules are evaluated in
// declaration order; the first keyword hit wins.
type Rule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// Classifier assigns a category to each transaction. It is deterministic
// and has no side effects.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier from an ordered rule list.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Default returns a Classifier with the built-in rule table.
func Default() *Classifier {
	return New(DefaultRules())
}

// Classify returns the category for one transaction. Inflows are only
// tested against the Salary rule; everything else scans the expense rules
// in order. Unmatched transactions fall back to Miscellaneous.
func (c *Classifier) Classify(t model.Transaction) model.Category {
	desc := strings.ToLower(t.Description)

	if t.Type == model.TypeInflow {
		for _, r := range c.rules {
			if r.Category != model.CategorySalary {
				continue
			}
			if matchAny(desc, r.Keywords) {
				return model.CategorySalary
			}
		}
		return model.CategoryMiscellaneous
	}

	for _, r := range c.rules {
		if r.Category == model.CategorySalary || r.Category == model.CategoryMiscellaneous {
			continue
		}
		if matchAny(desc, r.Keywords) {
			return r.Category
		}
	}
	return model.CategoryMiscellaneous
}

// Process classifies every transaction, preserving input order.
func (c *Classifier) Process(txns []model.Transaction) []model.ProcessedTransaction {
	out := make([]model.ProcessedTransaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, model.ProcessedTransaction{
			Transaction: t,
			Category:    c.Classify(t),
		})
	}
	return out
}

func matchAny(desc string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(desc, k) {
			return true
		}
	}
	return false
}
