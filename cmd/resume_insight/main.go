// Package main provides the entry point for the resume-insight CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/catalog"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/embedding"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/matching"
)

var (
	configPath string
	verbose    bool
	jsonLogs   bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume analysis and job matching",
	Long:  "Resume Insight parses PDF resumes, extracts skills, matches them against a job-role catalog using skill overlap fused with embedding similarity, and serves the results over a REST API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON-encoded logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file (when given),
// then environment, then defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if verbose {
		cfg.Verbose = true
	}
	if jsonLogs {
		cfg.JSONLogs = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildEngine wires the catalog, the optional embedding oracle, and the
// matching engine. The returned closer releases the oracle's client and
// may be nil.
func buildEngine(ctx context.Context, cfg config.Config, log *zap.Logger) (*matching.Engine, func(), error) {
	cat, err := catalog.Load(cfg.JobRolesPath)
	if err != nil {
		log.Warn("job role catalog unavailable, matching will return no results",
			zap.String("path", cfg.JobRolesPath), zap.Error(err))
	} else {
		log.Info("job role catalog loaded", zap.Int("roles", cat.Len()))
	}

	var oracle embedding.Oracle
	var closer func()
	if cfg.APIKey != "" {
		model := cfg.EmbeddingModel
		if model == "" {
			model = embedding.DefaultModel
		}
		gemini, err := embedding.NewGeminiOracle(ctx, cfg.APIKey, model)
		if err != nil {
			log.Warn("embedding oracle unavailable, using skill overlap only", zap.Error(err))
		} else {
			oracle = gemini
			closer = func() { _ = gemini.Close() }
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, using skill overlap only")
	}

	return matching.New(ctx, cat, oracle, log), closer, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}
