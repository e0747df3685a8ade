package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/builder"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score structured resume builder data",
	Long:  "Reads ResumeData JSON and prints the builder completeness score with the items still missing.",
	RunE:  runScore,
}

var (
	scoreInput  string
	scoreFormat string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "in", "i", "", "Path to ResumeData JSON file, or - for stdin (required)")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", formatText, "Output format: text or json")

	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreFormat != formatText && scoreFormat != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", scoreFormat)
	}

	var content []byte
	var err error
	if scoreInput == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(scoreInput)
	}
	if err != nil {
		return fmt.Errorf("failed to read resume data: %w", err)
	}

	data, err := parseResumeData(content)
	if err != nil {
		return err
	}

	result := builder.CalculateATSScore(*data)
	if path := schemas.ResolveSchemaPath(schemas.ATSResultSchema); path != "" {
		if err := schemas.ValidateValue(path, result); err != nil {
			appLog.Warn("result does not match schema", zap.Error(err))
		}
	}

	if scoreFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintATSResult(&result)
	return nil
}

// parseResumeData decodes and validates builder data, including its template id.
func parseResumeData(content []byte) (*types.ResumeData, error) {
	var data types.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data JSON: %w", err)
	}
	if err := validator.New().Struct(&data); err != nil {
		return nil, fmt.Errorf("invalid resume data: %w", err)
	}
	if data.Template != "" {
		if _, ok := catalog.Lookup(data.Template); !ok {
			return nil, fmt.Errorf("invalid resume data: unknown template %q", data.Template)
		}
	}
	return &data, nil
}
