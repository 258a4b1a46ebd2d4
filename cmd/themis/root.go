package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "themis",
	Short: "Mercator Themis - document rule-compliance evaluation service",
	Long: `Mercator Themis evaluates free-text rules against the extracted text of an
uploaded PDF and returns a structured verdict per rule.

Verdicts are produced by a hosted reasoning backend (Groq, Mistral, or
OpenAI) when a credential is configured, and by a deterministic keyword
heuristic otherwise. Every rule always receives a well-formed verdict, even
when every backend is down.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
