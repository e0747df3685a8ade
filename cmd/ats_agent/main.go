// Package main implements the ats_agent CLI: resume ATS analysis, builder
// scoring, the template catalog and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	debugLogs  bool
	jsonLogs   bool

	appConfig *config.Config
	appLog    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "Resume ATS analyzer",
	Long: "ats_agent scores resumes the way an applicant tracking system reads them: " +
		"keywords, sections, formatting and readability for plain text, documents and " +
		"hosted pages, plus a completeness score for structured builder data.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	flags.BoolVar(&debugLogs, "debug", false, "Enable debug logging")
	flags.BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	loader := config.NewLoader()
	flags := cmd.Flags()
	if err := loader.BindFlag("log.debug", flags.Lookup("debug")); err != nil {
		return err
	}
	if err := loader.BindFlag("log.json", flags.Lookup("json-logs")); err != nil {
		return err
	}
	if port := flags.Lookup("port"); port != nil {
		if err := loader.BindFlag("port", port); err != nil {
			return err
		}
	}

	cfg, err := loader.Load(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appLog = log
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = appLog.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
