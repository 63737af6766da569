package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sudsywork/sudsy/internal/cli"
	"github.com/sudsywork/sudsy/internal/sheets"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(authSheetsCmd())

	return cmd
}

func authSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Run the interactive OAuth2 flow for Google Sheets and save the resulting
token. Alternatively, point sheets.service_account_path at a service
account key and skip this entirely.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientID := viper.GetString("sheets.client_id")
			clientSecret := viper.GetString("sheets.client_secret")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("set sheets.client_id and sheets.client_secret in the config file first")
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}

			oauthConfig := sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    filepath.Join(home, ".config", "sudsy", "sheets-token.json"),
			}

			token, err := sheets.GetOrCreateToken(cmd.Context(), oauthConfig)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Authenticated with Google Sheets"))
			if token.RefreshToken != "" {
				fmt.Println(cli.SubtleStyle.Render("Add this refresh token to your config as sheets.refresh_token:"))
				fmt.Println(token.RefreshToken)
			}

			return nil
		},
	}
}
