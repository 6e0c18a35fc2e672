package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a JSON Schema",
	Long:  "Validates a JSON file against a JSON Schema file and reports field-level violations. Exits non-zero when the document is invalid.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON document to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateJSONFile(validateSchema, validateJSON); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateJSON)
	return nil
}
