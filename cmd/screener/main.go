// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening and candidate ranking",
	Long:  "Screener ranks candidate resumes against job postings with a deterministic, multi-signal scoring model and produces human-readable explanations for every ranked candidate.",
}

var (
	flagConfig   string
	flagOntology string
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagOntology, "ontology", "", "Path to skill ontology JSON file (default: built-in ontology)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
