package main

import (
	"os"

	"github.com/spendlens-dev/spendlens/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
