package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/experience"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/schemas"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job posting",
	Long:  "Scores every candidate in a batch against a job posting and produces a ranked list with per-candidate sub-scores, matched and missing skills, and explanations.",
	RunE:  runRank,
}

var (
	rankCandidates string
	rankJob        string
	rankOutput     string
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to input candidates JSON file (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to input job JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	env, err := buildEnvironment()
	if err != nil {
		return err
	}

	// Input validation against the embedded schemas is fatal: a malformed
	// batch should fail loudly before any scoring runs.
	candidatesRaw, err := os.ReadFile(rankCandidates)
	if err != nil {
		return fmt.Errorf("failed to read candidates file %s: %w", rankCandidates, err)
	}
	if err := schemas.Validate(schemas.SchemaCandidates, candidatesRaw); err != nil {
		return fmt.Errorf("candidates file %s: %w", rankCandidates, err)
	}
	jobRaw, err := os.ReadFile(rankJob)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", rankJob, err)
	}
	if err := schemas.Validate(schemas.SchemaJob, jobRaw); err != nil {
		return fmt.Errorf("job file %s: %w", rankJob, err)
	}

	candidates, err := experience.LoadCandidates(rankCandidates)
	if err != nil {
		return err
	}
	job, err := experience.LoadJob(rankJob)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range candidates {
		experience.NormalizeCandidate(&candidates[i], env.skills, now)
	}

	weights, err := ranking.ParseWeights(env.cfg.Weights)
	if err != nil {
		return err
	}

	scorer, err := ranking.NewScorer(env.skills, weights, env.log)
	if err != nil {
		return err
	}

	outcome, err := scorer.Rank(candidates, job)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	// Output validation is non-fatal: a schema drift is worth a warning, not
	// a failed run over already-computed results.
	if outcomeRaw, err := json.Marshal(outcome); err == nil {
		if err := schemas.Validate(schemas.SchemaRanking, outcomeRaw); err != nil {
			env.log.Warn("ranking output failed schema validation", zap.Error(err))
		}
	}

	if err := writeJSON(rankOutput, outcome); err != nil {
		return err
	}

	if rankOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Ranked %d candidates (%d skipped) to %s\n",
			len(outcome.Results), len(outcome.Skipped), rankOutput)
	}

	return nil
}
