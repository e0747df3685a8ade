package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing the analysis, template and draft endpoints. " +
		"Drafts are stored in PostgreSQL when DATABASE_URL is set and in memory otherwise.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", config.DefaultPort, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig

	if cfg.JWT.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		cfg.JWT.Secret = secret
		appLog.Warn("JWT_SECRET not set, using an ephemeral secret; sessions end when the server stops")
	}

	store, err := openStore(cmd, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	srv, err := server.New(&cfg, store, appLog)
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}

// openStore connects to PostgreSQL and applies the schema, or falls back to
// an in-memory store when no database URL is configured.
func openStore(cmd *cobra.Command, databaseURL string) (db.Store, error) {
	if databaseURL == "" {
		appLog.Info("DATABASE_URL not set, drafts are kept in memory")
		return db.NewMemoryStore(), nil
	}

	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(cmd.Context()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply database schema: %w", err)
	}
	appLog.Info("draft store connected", zap.String("store", "postgres"))
	return database, nil
}

// randomSecret returns 32 random bytes, hex encoded.
func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
