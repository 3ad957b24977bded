package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/experience"
	"github.com/jonathan/resume-screener/internal/explain"
	"github.com/jonathan/resume-screener/internal/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Render the explanation for one ranked candidate",
	Long:  "Re-renders the structured explanation for a single candidate from a previously produced ranking outcome. Explanation rendering is deterministic, so the output is identical to the one embedded in the ranking results.",
	RunE:  runExplain,
}

var (
	explainResults     string
	explainCandidates  string
	explainJob         string
	explainCandidateID string
	explainOutput      string
)

func init() {
	explainCmd.Flags().StringVarP(&explainResults, "results", "r", "", "Path to ranking outcome JSON file (required)")
	explainCmd.Flags().StringVarP(&explainCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	explainCmd.Flags().StringVarP(&explainJob, "job", "j", "", "Path to job JSON file (required)")
	explainCmd.Flags().StringVar(&explainCandidateID, "candidate-id", "", "Candidate id to explain (required)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	for _, flag := range []string{"results", "candidates", "job", "candidate-id"} {
		if err := explainCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(_ *cobra.Command, _ []string) error {
	env, err := buildEnvironment()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(explainResults)
	if err != nil {
		return fmt.Errorf("failed to read results file %s: %w", explainResults, err)
	}

	var outcome types.RankingOutcome
	if err := json.Unmarshal(data, &outcome); err != nil {
		return fmt.Errorf("failed to parse results JSON: %w", err)
	}

	candidates, err := experience.LoadCandidates(explainCandidates)
	if err != nil {
		return err
	}
	job, err := experience.LoadJob(explainJob)
	if err != nil {
		return err
	}

	var result *types.RankingResult
	for i := range outcome.Results {
		if outcome.Results[i].CandidateID == explainCandidateID {
			result = &outcome.Results[i]
			break
		}
	}
	if result == nil {
		return fmt.Errorf("candidate %s not found in ranking results", explainCandidateID)
	}

	var candidate *types.Candidate
	for i := range candidates {
		if candidates[i].ID == explainCandidateID {
			candidate = &candidates[i]
			break
		}
	}
	if candidate != nil {
		// Same normalization the rank path applies, so the rendered text
		// reflects the record as it was scored.
		experience.NormalizeCandidate(candidate, env.skills, time.Now())
	}

	payload := explain.Explain(result, candidate, job)
	return writeJSON(explainOutput, payload)
}
