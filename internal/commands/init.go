package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/classify"
	"github.com/spendlens-dev/spendlens/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default spendlens.yaml and categorization rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "rules"), 0o755); err != nil {
		return fmt.Errorf("creating rules directory: %w", err)
	}

	cfg := config.Default()
	cfg.RulesFile = filepath.Join("rules", "categories.yaml")
	if err := config.Save(filepath.Join(dir, "spendlens.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	rulesPath := filepath.Join(dir, "rules", "categories.yaml")
	if err := classify.SaveRules(rulesPath, classify.DefaultRules()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized spendlens config at %s\n", dir)
	return nil
}
