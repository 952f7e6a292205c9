package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/advisor"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/skills"
)

var (
	analyzeTopK     int
	analyzeLocation string
	analyzeJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a resume PDF and print job matches",
	Long:  `Run the full analysis on one resume PDF: parse, extract skills, match against the job-role catalog, and print recommendations and career advice.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTopK, "top-k", 0, "Number of job matches to return")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Location for job portal links")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeTopK > 0 {
		cfg.TopK = analyzeTopK
	}
	if analyzeLocation != "" {
		cfg.Location = analyzeLocation
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}

	text, err := parsing.ExtractText(data)
	if err != nil {
		return fmt.Errorf("extracting text from %s: %w", args[0], err)
	}

	resume := parsing.ParseResume(text)

	opts := skills.DefaultOptions()
	opts.SubstringMatch = !cfg.DisableSubstringMatch
	profile := skills.Extract(resume, opts)

	ctx := context.Background()
	engine, closeOracle, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	if closeOracle != nil {
		defer closeOracle()
	}

	rec := engine.Recommendations(ctx, profile, cfg.TopK, cfg.Location)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"resume":         resume,
			"profile":        profile,
			"recommendation": rec,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResume(resume)
	}
	printer.PrintSkillProfile(profile)
	printer.PrintRecommendation(rec)

	if len(rec.TopMatches) > 0 {
		advice, err := advisor.Advice(profile, rec.TopMatches)
		if err == nil {
			printer.PrintAdvice(advice)
		}
	}

	return nil
}
