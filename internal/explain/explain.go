// Package explain renders a ranking result into structured, human-readable
// explanation text. Rendering is a pure function: identical inputs always
// produce byte-identical output, which downstream audit trails rely on.
package explain

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Recommendation thresholds on overall_rank_score.
const (
	highlyRecommendedMin = 75.0
	recommendedMin       = 60.0
	considerMin          = 45.0
)

// Explain builds the explanation payload for one ranking result.
// The candidate and job are the same records the result was scored from;
// the candidate may be nil when only result-level fields are available.
func Explain(result *types.RankingResult, candidate *types.Candidate, job *types.Job) *types.ExplanationPayload {
	return &types.ExplanationPayload{
		Reason:                  reason(result),
		MatchedSkillsDetail:     matchedDetail(result.MatchedSkills),
		MissingSkillsDetail:     missingDetail(result.MissingSkills),
		ExperienceAlignmentText: experienceText(candidate, job),
		SeniorityReasoningText:  seniorityText(result),
		OverallSummary:          summary(result, job),
		Recommendation:          Recommendation(result.OverallRankScore),
	}
}

// Recommendation maps an overall score to its hiring recommendation bucket.
func Recommendation(overallScore float64) string {
	switch {
	case overallScore >= highlyRecommendedMin:
		return types.RecommendationHighly
	case overallScore >= recommendedMin:
		return types.RecommendationStandard
	case overallScore >= considerMin:
		return types.RecommendationConsider
	default:
		return types.RecommendationNo
	}
}

// reason names the rank position and the dominant positive factor. Ties are
// broken by fixed precedence: skill match, then experience, then seniority.
func reason(result *types.RankingResult) string {
	factor := "skill match"
	score := result.SkillMatchScore
	if result.ExperienceMatchScore > score {
		factor = "experience match"
		score = result.ExperienceMatchScore
	}
	if result.SeniorityAlignmentScore > score {
		factor = "seniority alignment"
		score = result.SeniorityAlignmentScore
	}
	return fmt.Sprintf("Ranked #%d with %s as the strongest factor (%.1f/100).",
		result.RankPosition, factor, score)
}

func matchedDetail(matched []types.MatchedSkill) []types.MatchedSkillDetail {
	details := make([]types.MatchedSkillDetail, 0, len(matched))
	for _, m := range matched {
		detail := types.MatchedSkillDetail{Skill: m.Skill, Ambiguous: m.Ambiguous}
		bucket := "preferred"
		if m.Required {
			bucket = "required"
		}
		switch m.MatchType {
		case types.MatchInferred:
			detail.Detail = fmt.Sprintf("Inferred %s skill: candidate's %s %s %s (distance %d).",
				bucket, m.ViaSkill, relationPhrase(m.Relation), m.Skill, m.Distance)
		default:
			detail.Detail = fmt.Sprintf("Direct match on %s skill.", bucket)
		}
		details = append(details, detail)
	}
	return details
}

func relationPhrase(relation string) string {
	switch relation {
	case "requires":
		return "requires"
	case "implies":
		return "implies"
	default:
		return "is related to"
	}
}

func missingDetail(missing []types.MissingSkill) []types.MissingSkillDetail {
	details := make([]types.MissingSkillDetail, 0, len(missing))
	for _, m := range missing {
		bucket := "preferred"
		if m.Required {
			bucket = "required"
		}
		details = append(details, types.MissingSkillDetail{
			Skill:  m.Skill,
			Impact: m.Impact,
			Detail: fmt.Sprintf("Missing %s skill %s (%s impact).", bucket, m.Skill, m.Impact),
		})
	}
	return details
}

func experienceText(candidate *types.Candidate, job *types.Job) string {
	if candidate == nil || job == nil {
		return ""
	}
	required := job.YearsOfExperienceRequired
	years := candidate.YearsOfExperience
	if required <= 0 {
		return fmt.Sprintf("Candidate has %.1f years of experience; the role declares no specific requirement.", years)
	}
	if years >= required {
		return fmt.Sprintf("Candidate has %.1f years of experience, meeting the requirement of %.1f years.",
			years, required)
	}
	return fmt.Sprintf("Candidate has %.1f years of experience, %.1f years below the requirement of %.1f years.",
		years, required-years, required)
}

// seniorityText reuses the classifier's reasoning list verbatim.
func seniorityText(result *types.RankingResult) string {
	if result.Seniority == nil || len(result.Seniority.Reasoning) == 0 {
		return ""
	}
	return strings.Join(result.Seniority.Reasoning, " ")
}

func summary(result *types.RankingResult, job *types.Job) string {
	name := result.CandidateName
	if name == "" {
		name = "Candidate"
	}
	title := "the position"
	if job != nil && job.Title != "" {
		title = fmt.Sprintf("the %s position", job.Title)
	}
	return fmt.Sprintf("%s is ranked #%d for %s with an overall score of %.1f/100. Recommendation: %s.",
		name, result.RankPosition, title, result.OverallRankScore, Recommendation(result.OverallRankScore))
}
