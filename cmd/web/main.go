package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/tag-atlas/pkg/server"
	"github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/de-tools/tag-atlas/pkg/services/config"
	"github.com/de-tools/tag-atlas/pkg/services/source/azure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profile    string
	configPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the tag compliance auditor",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profile, "profile", "p", azure.DefaultProfile,
		"Azure config profile to read the subscription from (~/.azure/config)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to an audit settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	azureCfg, err := azure.LoadConfig(profile)
	if err != nil {
		return fmt.Errorf("failed to load Azure config: %w", err)
	}

	settings, err := config.LoadAuditSettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load audit settings: %w", err)
	}

	src, err := azure.NewSource(azureCfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to create Azure source: %w", err)
	}

	logger.Info().
		Str("subscription_id", azureCfg.SubscriptionID).
		Strs("required_tags", settings.RequiredTags).
		Msg("auditor configured")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Auditor: audit.NewRunner(src, settings.RequiredTags),
		},
	})

	return api.Start()
}
