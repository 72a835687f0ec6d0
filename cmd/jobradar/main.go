// Package main provides the entry point for the jobradar API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobradar",
	Short: "Hong Kong job board aggregator",
	Long:  "jobradar crawls regional job boards, annotates every posting with a deterministic rule engine, and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
