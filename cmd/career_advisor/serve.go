package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushkarjay/career-advisor/internal/config"
	"github.com/pushkarjay/career-advisor/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career matching, skill-gap analysis, and resource recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = configFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	adv, cleanup, err := buildAdvisor(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build advisor: %w", err)
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:    servePort,
		Advisor: adv,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
