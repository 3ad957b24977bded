package ranking

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/explain"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/ontology"
	"github.com/jonathan/resume-screener/internal/seniority"
	"github.com/jonathan/resume-screener/internal/types"
)

// Scorer ranks candidate batches against jobs. All dependencies are injected
// at construction and read-only afterward, so a single Scorer may be shared
// by concurrent callers.
type Scorer struct {
	matcher    *matching.Matcher
	classifier *seniority.Classifier
	weights    Weights
	logger     *zap.Logger
}

// NewScorer creates a Scorer. The weights are validated up front: invalid
// weights are a ConfigurationError and no scoring ever runs with them.
func NewScorer(o *ontology.Ontology, weights Weights, logger *zap.Logger) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		matcher:    matching.NewMatcher(o),
		classifier: seniority.NewClassifier(o),
		weights:    weights,
		logger:     logger,
	}, nil
}

// Rank scores every candidate against the job and returns results sorted
// descending by overall score. The sort is stable: candidates with equal
// scores keep their input order, and every result gets a distinct 1-based
// rank position (ordinal tie policy).
//
// Candidates that fail validation are excluded and reported in Skipped;
// one bad candidate never aborts the batch. An invalid job aborts the call,
// since nothing can be ranked against it.
func (s *Scorer) Rank(candidates []types.Candidate, job *types.Job) (*types.RankingOutcome, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}

	outcome := &types.RankingOutcome{
		JobID:   job.ID,
		Results: []types.RankingResult{},
	}

	valid := make([]*types.Candidate, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		if reason := validateCandidate(candidate); reason != "" {
			outcome.Skipped = append(outcome.Skipped, types.SkippedCandidate{
				CandidateID:   candidate.ID,
				CandidateName: candidate.Name,
				Reason:        reason,
			})
			s.logger.Warn("candidate excluded from ranking",
				zap.String("candidate_id", candidate.ID),
				zap.String("reason", reason))
			continue
		}
		valid = append(valid, candidate)
	}

	// Per-candidate scoring is embarrassingly parallel; each goroutine
	// writes only its own slot. The sort below is the ordering barrier.
	results := make([]types.RankingResult, len(valid))
	var group errgroup.Group
	for i, candidate := range valid {
		i, candidate := i, candidate
		group.Go(func() error {
			results[i] = s.score(candidate, job)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallRankScore > results[j].OverallRankScore
	})

	total := len(results)
	for i := range results {
		results[i].RankPosition = i + 1
		if total > 1 {
			results[i].Percentile = 100.0 * float64(total-results[i].RankPosition) / float64(total-1)
		} else {
			results[i].Percentile = 100.0
		}
	}

	// Explanations depend on rank positions, so they are rendered after the
	// sort, from the same immutable inputs.
	byID := make(map[string]*types.Candidate, len(valid))
	for _, candidate := range valid {
		byID[candidate.ID] = candidate
	}
	for i := range results {
		results[i].Explanation = explain.Explain(&results[i], byID[results[i].CandidateID], job)
	}

	outcome.Results = results
	return outcome, nil
}

// score computes all sub-scores for one candidate. Pure given its inputs.
func (s *Scorer) score(candidate *types.Candidate, job *types.Job) types.RankingResult {
	match := s.matcher.Match(candidate.Skills, job)

	inferred := candidate.InferredSeniority
	if inferred == nil {
		inferred = s.classifier.Infer(candidate)
	}

	skillScore := clamp(match.Score, 0, 100)
	experienceScore := clamp(experienceMatchScore(candidate.YearsOfExperience, job.YearsOfExperienceRequired), 0, 100)
	seniorityScore := clamp(seniorityAlignmentScore(inferred.Level, job.JobLevel), 0, 100)

	overall := s.weights.Skill*skillScore +
		s.weights.Experience*experienceScore +
		s.weights.Seniority*seniorityScore

	if s.weights.SemanticSimilarity > 0 && candidate.SemanticSimilarity != nil {
		overall += s.weights.SemanticSimilarity * clamp(*candidate.SemanticSimilarity, 0, 1) * 100
	}

	return types.RankingResult{
		CandidateID:             candidate.ID,
		CandidateName:           candidate.Name,
		JobID:                   job.ID,
		SkillMatchScore:         skillScore,
		ExperienceMatchScore:    experienceScore,
		SeniorityAlignmentScore: seniorityScore,
		OverallRankScore:        clamp(overall, 0, 100),
		MatchedSkills:           match.MatchedSkills,
		MissingSkills:           match.MissingSkills,
		Seniority:               inferred,
	}
}

func validateJob(job *types.Job) error {
	if job == nil {
		return &InvalidInputError{Record: "job", Reason: "job is nil"}
	}
	for i, skill := range job.RequiredSkills {
		if strings.TrimSpace(skill.Skill) == "" {
			return &InvalidInputError{
				Record: fmt.Sprintf("job %s", job.ID),
				Reason: fmt.Sprintf("required_skills[%d] has an empty skill name", i),
			}
		}
	}
	for i, skill := range job.PreferredSkills {
		if strings.TrimSpace(skill.Skill) == "" {
			return &InvalidInputError{
				Record: fmt.Sprintf("job %s", job.ID),
				Reason: fmt.Sprintf("preferred_skills[%d] has an empty skill name", i),
			}
		}
	}
	return nil
}

// validateCandidate returns an exclusion reason, or "" when the candidate is
// acceptable for ranking.
func validateCandidate(candidate *types.Candidate) string {
	if candidate.YearsOfExperience < 0 {
		return fmt.Sprintf("negative years_of_experience (%v)", candidate.YearsOfExperience)
	}
	return ""
}
