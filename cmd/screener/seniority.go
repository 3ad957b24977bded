package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/experience"
	"github.com/jonathan/resume-screener/internal/seniority"
	"github.com/jonathan/resume-screener/internal/types"
)

var seniorityCmd = &cobra.Command{
	Use:   "seniority",
	Short: "Infer seniority levels for a candidate batch",
	Long:  "Runs the standalone seniority classifier over a candidate batch and prints the inferred level, confidence and reasoning for each candidate.",
	RunE:  runSeniority,
}

var (
	seniorityCandidates string
	seniorityOutput     string
)

func init() {
	seniorityCmd.Flags().StringVarP(&seniorityCandidates, "candidates", "c", "", "Path to input candidates JSON file (required)")
	seniorityCmd.Flags().StringVarP(&seniorityOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := seniorityCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(seniorityCmd)
}

// seniorityReport pairs a candidate with its inferred seniority.
type seniorityReport struct {
	CandidateID   string                 `json:"candidate_id"`
	CandidateName string                 `json:"candidate_name"`
	Seniority     *types.SeniorityResult `json:"seniority"`
}

func runSeniority(_ *cobra.Command, _ []string) error {
	env, err := buildEnvironment()
	if err != nil {
		return err
	}

	candidates, err := experience.LoadCandidates(seniorityCandidates)
	if err != nil {
		return err
	}

	classifier := seniority.NewClassifier(env.skills)
	now := time.Now()

	reports := make([]seniorityReport, 0, len(candidates))
	for i := range candidates {
		experience.NormalizeCandidate(&candidates[i], env.skills, now)
		reports = append(reports, seniorityReport{
			CandidateID:   candidates[i].ID,
			CandidateName: candidates[i].Name,
			Seniority:     classifier.Infer(&candidates[i]),
		})
	}

	return writeJSON(seniorityOutput, reports)
}
