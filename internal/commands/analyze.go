package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/classify"
	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/normalize"
	"github.com/spendlens-dev/spendlens/internal/pipeline"
	"github.com/spendlens-dev/spendlens/internal/summary"
)

// errNoTransactions is the user-facing zero-result error, distinct from a
// fatal parse failure.
var errNoTransactions = errors.New("no valid transactions found - check that the file contains date, description and amount columns")

func newAnalyzeCommand() *cobra.Command {
	var configPath string
	var rulesPath string
	var dateOrder string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze <statement-file>",
		Short: "Parse a bank statement (csv, xlsx, json) and print spending insights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override spendlens.yaml, which overrides defaults.
			cfg, err := loadOptionalConfig(configPath)
			if err != nil {
				return err
			}
			if cfg != nil {
				if !cmd.Flags().Changed("date-order") {
					dateOrder = cfg.DateOrder
				}
				if !cmd.Flags().Changed("rules") && cfg.RulesFile != "" {
					rulesPath = cfg.RulesFile
				}
			}
			return runAnalyze(cmd.OutOrStdout(), args[0], rulesPath, dateOrder, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "spendlens.yaml", "path to spendlens.yaml")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a categorization rules YAML")
	cmd.Flags().StringVar(&dateOrder, "date-order", config.DateOrderDayFirst, "ambiguous date convention: day-first or month-first")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log row-level diagnostics to stderr")

	return cmd
}

// loadOptionalConfig reads the config file if it exists. A missing file is
// not an error; a malformed one is.
func loadOptionalConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return config.Load(path)
}

func runAnalyze(w io.Writer, path, rulesPath, dateOrder string, verbose bool) error {
	order, err := parseDateOrder(dateOrder)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	result, err := pipeline.Process(filepath.Base(path), f, pipeline.Options{
		DateOrder: order,
		Logger:    &logger,
	})
	if err != nil {
		return err
	}
	if len(result.Transactions) == 0 {
		return errNoTransactions
	}

	rules := classify.DefaultRules()
	if rulesPath != "" {
		rules, err = classify.LoadRules(rulesPath)
		if err != nil {
			return err
		}
	}

	processed := classify.New(rules).Process(result.Transactions)
	render(w, summary.Build(processed), len(processed), result.Dropped)
	return nil
}

func parseDateOrder(s string) (normalize.DateOrder, error) {
	switch s {
	case "", config.DateOrderDayFirst:
		return normalize.DayFirst, nil
	case config.DateOrderMonthFirst:
		return normalize.MonthFirst, nil
	default:
		return normalize.DayFirst, fmt.Errorf("invalid date order %q (want day-first or month-first)", s)
	}
}

func render(w io.Writer, s summary.Summary, count, dropped int) {
	fmt.Fprintf(w, "Transactions: %d (%d rows dropped)\n", count, dropped)
	fmt.Fprintf(w, "Total inflow:  %s\n", s.TotalInflow.StringFixed(2))
	fmt.Fprintf(w, "Total expense: %s\n", s.TotalExpense.StringFixed(2))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Expenses by category:")
	for _, c := range s.ExpensesByCategory {
		fmt.Fprintf(w, "  %-15s %s\n", c.Name, c.Amount.StringFixed(2))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Monthly (all years combined):")
	for _, m := range s.Monthly {
		if m.Expense.IsZero() && m.Inflow.IsZero() {
			continue
		}
		fmt.Fprintf(w, "  %s  expense %12s  inflow %12s\n", m.Month, m.Expense.StringFixed(2), m.Inflow.StringFixed(2))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Top category:          %s\n", s.Insights.TopCategory)
	fmt.Fprintf(w, "Peak spending month:   %s\n", s.Insights.HighestSpendingMonth)
	fmt.Fprintf(w, "Net savings:           %s\n", s.Insights.NetSavings.StringFixed(2))
	fmt.Fprintf(w, "Savings rate:          %.1f%%\n", s.Insights.SavingsRate)
}
