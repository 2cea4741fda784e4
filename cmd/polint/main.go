package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"polint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "polint",
	Short: "Lint gettext PO files",
	Long:  `polint checks gettext translation catalogs for common mistakes and computes translation statistics`,
}

// main registers subcommands and executes the root command. Findings
// exit with code 1 from the commands themselves; a returned error
// (bad flags, unknown rules, missing paths) exits with code 2.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
