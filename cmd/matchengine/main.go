// Package main implements the matchengine CLI for candidate-job scoring and
// resume profile extraction.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Candidate-job matching and profile extraction engine",
	Long:  "matchengine scores candidate profiles against job postings with a deterministic multi-factor engine, extracts structured profiles from resume documents, and suggests related skills from a fixed taxonomy.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
