// Package main provides the entry point for the Interview Evaluator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Interview Evaluator HTTP API Server",
	Long:  "Interview Evaluator scores candidate answers in stored interview documents with an LLM and notifies the owning user via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
