package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a draft session token",
	Long:  "Signs a session token for a new anonymous owner with JWT_SECRET, for calling the draft API from scripts.",
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	svc, err := server.NewJWTService(appConfig.JWT)
	if err != nil {
		return fmt.Errorf("cannot sign tokens: %w", err)
	}

	session, err := svc.NewSession()
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), types.SessionResponse{
		OwnerID:   session.OwnerID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}
