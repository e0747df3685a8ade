package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Score resume text, documents or hosted pages",
	Long: "Extracts text from each input (TXT, Markdown, PDF, DOCX, HTML files, URLs, " +
		"inline text or the built-in sample) and prints its ATS score report. " +
		"Inputs are analyzed concurrently and reported in the order given.",
	RunE: runAnalyze,
}

var (
	analyzeURLs        []string
	analyzeText        string
	analyzeSample      bool
	analyzeFormat      string
	analyzeOutput      string
	analyzeConcurrency int
)

func init() {
	analyzeCmd.Flags().StringArrayVarP(&analyzeURLs, "url", "u", nil, "URL of a hosted resume (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Resume text to analyze")
	analyzeCmd.Flags().BoolVar(&analyzeSample, "sample", false, "Analyze the built-in sample resume")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatText, "Output format: text or json")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write output to this file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 4, "Maximum inputs analyzed at once")

	rootCmd.AddCommand(analyzeCmd)
}

// input is one resume to analyze. Exactly one loader produces its text.
type input struct {
	source string
	load   func(ctx context.Context) (string, error)
}

func fileInput(path string) input {
	return input{source: path, load: func(context.Context) (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return extract.Extract(filepath.Base(path), data)
	}}
}

func urlInput(url string, opts *fetch.Options) input {
	return input{source: url, load: func(ctx context.Context) (string, error) {
		return fetch.ResumeText(ctx, url, opts)
	}}
}

func textInput(source, text string) input {
	return input{source: source, load: func(context.Context) (string, error) {
		return text, nil
	}}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != formatText && analyzeFormat != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", analyzeFormat)
	}

	fetchOpts := &fetch.Options{
		Timeout:    appConfig.Fetch.Timeout,
		UseBrowser: appConfig.Fetch.UseBrowser,
		Logger:     appLog.Named("fetch"),
	}

	var inputs []input
	for _, path := range args {
		inputs = append(inputs, fileInput(path))
	}
	for _, url := range analyzeURLs {
		inputs = append(inputs, urlInput(url, fetchOpts))
	}
	if cmd.Flags().Changed("text") {
		inputs = append(inputs, textInput("text", analyzeText))
	}
	if analyzeSample {
		inputs = append(inputs, textInput("sample", analysis.SampleResume))
	}
	if len(inputs) == 0 {
		return errors.New("nothing to analyze: pass files, --url, --text or --sample")
	}

	results, err := analyzeAll(cmd.Context(), inputs, analyzeConcurrency)
	if err != nil {
		return err
	}

	checkReports(results)

	out := cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return writeResults(out, analyzeFormat, results)
}

// analyzeAll loads and scores inputs with at most limit in flight. Results
// keep input order; the first failure cancels the rest.
func analyzeAll(ctx context.Context, inputs []input, limit int) ([]types.AnalysisResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]types.AnalysisResponse, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, in := range inputs {
		g.Go(func() error {
			log := logger.WithFields(appLog, zap.String(logger.FieldSource, in.source))
			text, err := in.load(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", in.source, err)
			}
			report := analysis.Analyze(text)
			log.Debug("analyzed",
				zap.Int(logger.FieldScore, report.OverallScore),
				zap.Int("words", report.Stats.WordCount))
			results[i] = types.AnalysisResponse{Source: in.source, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkReports validates reports against the report schema. Failures are
// logged, never fatal.
func checkReports(results []types.AnalysisResponse) {
	schemaPath := schemas.ResolveSchemaPath(schemas.ScoreReportSchema)
	if schemaPath == "" {
		appLog.Debug("report schema not found, skipping validation")
		return
	}
	for _, r := range results {
		if err := schemas.ValidateValue(schemaPath, r.Report); err != nil {
			appLog.Warn("report does not match schema",
				zap.String(logger.FieldSource, r.Source), zap.Error(err))
		}
	}
}

// writeResults prints results as boxed text, or as JSON: a single object for
// one result and an array otherwise.
func writeResults(w io.Writer, format string, results []types.AnalysisResponse) error {
	if format == formatJSON {
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		return writeJSON(w, v)
	}

	printer := observability.NewPrinter(w)
	for i := range results {
		printer.PrintReport(results[i].Source, &results[i].Report)
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
