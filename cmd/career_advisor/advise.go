package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pushkarjay/career-advisor/internal/config"
	"github.com/pushkarjay/career-advisor/internal/types"
)

var (
	adviseProfilePath string
	adviseCareerID    string
	adviseLimit       int
	adviseConfigPath  string
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Run a one-shot advisory report from a profile file",
	Long: `Score a profile JSON file against the career catalog and print the match
report to stdout. With --career, additionally runs a skill-gap analysis
against that catalog career.`,
	RunE: runAdvise,
}

func init() {
	adviseCmd.Flags().StringVar(&adviseProfilePath, "profile", "", "Path to profile JSON file (required)")
	adviseCmd.Flags().StringVar(&adviseCareerID, "career", "", "Career ID for skill-gap analysis")
	adviseCmd.Flags().IntVar(&adviseLimit, "limit", 0, "Maximum matches to return")
	adviseCmd.Flags().StringVar(&adviseConfigPath, "config", "", "Path to JSON config file")
	_ = adviseCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(adviseProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var input types.ProfileInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	cfg := config.Config{}
	if adviseConfigPath != "" {
		loaded, err := config.LoadConfig(adviseConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = configFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	adv, cleanup, err := buildAdvisor(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build advisor: %w", err)
	}
	defer cleanup()

	output := map[string]any{}

	matches, err := adv.ScoreCareerMatches(ctx, input, adviseLimit)
	if err != nil {
		return err
	}
	output["match_report"] = matches

	if adviseCareerID != "" {
		gapReport, err := adv.AnalyzeSkillGaps(ctx, input, adviseCareerID, nil)
		if err != nil {
			return err
		}
		output["gap_report"] = gapReport
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
