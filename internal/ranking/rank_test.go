package ranking

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/ontology"
	"github.com/jonathan/resume-screener/internal/types"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := NewScorer(ontology.Default(), DefaultWeights(), nil)
	require.NoError(t, err)
	return scorer
}

func backendJob() *types.Job {
	return &types.Job{
		ID:                        "job-1",
		Title:                     "Backend Engineer",
		JobLevel:                  "senior",
		YearsOfExperienceRequired: 5,
		RequiredSkills: []types.JobSkill{
			{Skill: "Python"},
			{Skill: "SQL"},
		},
		PreferredSkills: []types.JobSkill{
			{Skill: "Kubernetes"},
		},
	}
}

func candidateWith(id string, years float64, skillNames ...string) types.Candidate {
	skills := make([]types.CandidateSkill, 0, len(skillNames))
	for _, n := range skillNames {
		skills = append(skills, types.CandidateSkill{
			Skill:            n,
			ProficiencyLevel: types.ProficiencyAdvanced,
			Confidence:       1.0,
		})
	}
	return types.Candidate{
		ID:                id,
		Name:              "Candidate " + id,
		YearsOfExperience: years,
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Company: "Acme"},
		},
		Skills: skills,
	}
}

func TestNewScorer_RejectsInvalidWeights(t *testing.T) {
	_, err := NewScorer(ontology.Default(), Weights{Skill: 1, Experience: 1}, nil)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestRank_OrdersByOverallScore(t *testing.T) {
	scorer := newTestScorer(t)

	candidates := []types.Candidate{
		candidateWith("weak", 1),
		candidateWith("strong", 6, "Python", "SQL", "Kubernetes"),
		candidateWith("middle", 5, "Python"),
	}

	outcome, err := scorer.Rank(candidates, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 3)

	assert.Equal(t, "strong", outcome.Results[0].CandidateID)
	assert.Equal(t, "middle", outcome.Results[1].CandidateID)
	assert.Equal(t, "weak", outcome.Results[2].CandidateID)

	for i, result := range outcome.Results {
		assert.Equal(t, i+1, result.RankPosition)
		assert.Equal(t, "job-1", result.JobID)
		if i > 0 {
			assert.GreaterOrEqual(t, outcome.Results[i-1].OverallRankScore, result.OverallRankScore)
		}
	}
}

func TestRank_TiedScoresKeepInputOrder(t *testing.T) {
	scorer := newTestScorer(t)

	// Identical candidates except id produce identical scores; the stable
	// sort must preserve input order and assign distinct positions.
	candidates := []types.Candidate{
		candidateWith("first", 5, "Python", "SQL"),
		candidateWith("second", 5, "Python", "SQL"),
		candidateWith("third", 1),
	}

	outcome, err := scorer.Rank(candidates, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 3)

	assert.Equal(t, outcome.Results[0].OverallRankScore, outcome.Results[1].OverallRankScore)
	assert.Equal(t, "first", outcome.Results[0].CandidateID)
	assert.Equal(t, "second", outcome.Results[1].CandidateID)
	assert.Equal(t, 1, outcome.Results[0].RankPosition)
	assert.Equal(t, 2, outcome.Results[1].RankPosition)
	assert.Equal(t, 3, outcome.Results[2].RankPosition)
}

func TestRank_Percentiles(t *testing.T) {
	scorer := newTestScorer(t)

	candidates := []types.Candidate{
		candidateWith("a", 6, "Python", "SQL", "Kubernetes"),
		candidateWith("b", 5, "Python"),
		candidateWith("c", 1),
	}

	outcome, err := scorer.Rank(candidates, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 3)

	assert.InDelta(t, 100.0, outcome.Results[0].Percentile, 1e-9)
	assert.InDelta(t, 50.0, outcome.Results[1].Percentile, 1e-9)
	assert.InDelta(t, 0.0, outcome.Results[2].Percentile, 1e-9)
}

func TestRank_SingleCandidatePercentile(t *testing.T) {
	scorer := newTestScorer(t)

	outcome, err := scorer.Rank([]types.Candidate{candidateWith("only", 5, "Python")}, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, 100.0, outcome.Results[0].Percentile)
	assert.Equal(t, 1, outcome.Results[0].RankPosition)
}

func TestRank_EmptyBatch(t *testing.T) {
	scorer := newTestScorer(t)

	outcome, err := scorer.Rank(nil, backendJob())
	require.NoError(t, err)
	assert.NotNil(t, outcome.Results)
	assert.Empty(t, outcome.Results)
	assert.Empty(t, outcome.Skipped)
}

func TestRank_SkipsInvalidCandidateWithoutAbortingBatch(t *testing.T) {
	scorer := newTestScorer(t)

	bad := candidateWith("bad", -2, "Python")
	good := candidateWith("good", 5, "Python")

	outcome, err := scorer.Rank([]types.Candidate{bad, good}, backendJob())
	require.NoError(t, err)

	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "good", outcome.Results[0].CandidateID)

	require.Len(t, outcome.Skipped, 1)
	assert.Equal(t, "bad", outcome.Skipped[0].CandidateID)
	assert.Contains(t, outcome.Skipped[0].Reason, "negative years_of_experience")
}

func TestRank_InvalidJobAborts(t *testing.T) {
	scorer := newTestScorer(t)

	job := backendJob()
	job.RequiredSkills = append(job.RequiredSkills, types.JobSkill{Skill: "   "})

	_, err := scorer.Rank([]types.Candidate{candidateWith("a", 5)}, job)
	require.Error(t, err)

	var inputErr *InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Error(), "empty skill name")
}

func TestRank_NilJobAborts(t *testing.T) {
	scorer := newTestScorer(t)

	_, err := scorer.Rank([]types.Candidate{candidateWith("a", 5)}, nil)
	require.Error(t, err)
}

func TestRank_ScoresWithinBounds(t *testing.T) {
	scorer := newTestScorer(t)

	candidates := []types.Candidate{
		candidateWith("none", 0),
		candidateWith("all", 30, "Python", "SQL", "Kubernetes", "Docker", "Go"),
	}

	outcome, err := scorer.Rank(candidates, backendJob())
	require.NoError(t, err)

	for _, r := range outcome.Results {
		for name, score := range map[string]float64{
			"skill":      r.SkillMatchScore,
			"experience": r.ExperienceMatchScore,
			"seniority":  r.SeniorityAlignmentScore,
			"overall":    r.OverallRankScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s score for %s", name, r.CandidateID)
			assert.LessOrEqual(t, score, 100.0, "%s score for %s", name, r.CandidateID)
		}
	}
}

func TestRank_AttachesSeniorityAndExplanation(t *testing.T) {
	scorer := newTestScorer(t)

	outcome, err := scorer.Rank([]types.Candidate{candidateWith("a", 5, "Python")}, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 1)

	result := outcome.Results[0]
	require.NotNil(t, result.Seniority)
	assert.NotEmpty(t, result.Seniority.Reasoning)

	require.NotNil(t, result.Explanation)
	assert.Contains(t, result.Explanation.Reason, "Ranked #1")
	assert.NotEmpty(t, result.Explanation.Recommendation)
}

func TestRank_UsesPrecomputedSeniority(t *testing.T) {
	scorer := newTestScorer(t)

	candidate := candidateWith("a", 2, "Python")
	candidate.InferredSeniority = &types.SeniorityResult{
		Level:      types.SenioritySenior,
		Confidence: 0.9,
		Reasoning:  []string{"Provided by upstream classifier"},
	}

	outcome, err := scorer.Rank([]types.Candidate{candidate}, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 1)

	// The precomputed senior level matches the job's declared senior level.
	assert.Equal(t, 100.0, outcome.Results[0].SeniorityAlignmentScore)
	assert.Equal(t, types.SenioritySenior, outcome.Results[0].Seniority.Level)
}

func TestRank_SemanticBlendRequiresBothWeightAndValue(t *testing.T) {
	weights := Weights{Skill: 0.4, Experience: 0.3, Seniority: 0.2, SemanticSimilarity: 0.1}
	scorer, err := NewScorer(ontology.Default(), weights, nil)
	require.NoError(t, err)

	similarity := 0.8
	withSim := candidateWith("with", 5, "Python", "SQL")
	withSim.SemanticSimilarity = &similarity
	withoutSim := candidateWith("without", 5, "Python", "SQL")

	outcome, err := scorer.Rank([]types.Candidate{withSim, withoutSim}, backendJob())
	require.NoError(t, err)
	require.Len(t, outcome.Results, 2)

	assert.Equal(t, "with", outcome.Results[0].CandidateID)
	assert.Greater(t, outcome.Results[0].OverallRankScore, outcome.Results[1].OverallRankScore)
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	scorer := newTestScorer(t)

	candidates := []types.Candidate{
		candidateWith("a", 6, "Python", "SQL", "Kubernetes"),
		candidateWith("b", 5, "Python"),
		candidateWith("c", 5, "Python"),
		candidateWith("d", 1),
	}

	first, err := scorer.Rank(candidates, backendJob())
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := scorer.Rank(candidates, backendJob())
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}
