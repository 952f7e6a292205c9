package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/server"
)

var (
	servePort     int
	serveTopK     int
	serveLocation string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, skill extraction, job matching, career advice, and chat.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().IntVar(&serveTopK, "top-k", 0, "Default number of job matches to return")
	serveCmd.Flags().StringVar(&serveLocation, "location", "", "Default location for job portal links")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if serveTopK > 0 {
		cfg.TopK = serveTopK
	}
	if serveLocation != "" {
		cfg.Location = serveLocation
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx := context.Background()
	engine, closeOracle, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	if closeOracle != nil {
		defer closeOracle()
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		TopK:           cfg.TopK,
		Location:       cfg.Location,
		SubstringMatch: !cfg.DisableSubstringMatch,
	}, engine, log)

	return srv.Start()
}
