package types

// Hiring recommendation buckets, keyed off overall_rank_score.
const (
	RecommendationHighly   = "Highly Recommended"
	RecommendationStandard = "Recommended"
	RecommendationConsider = "Consider"
	RecommendationNo       = "Not Recommended"
)

// MatchedSkillDetail is the explanation-layer view of one matched skill.
type MatchedSkillDetail struct {
	Skill     string `json:"skill"`
	Detail    string `json:"detail"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
}

// MissingSkillDetail is the explanation-layer view of one missing skill,
// with an impact phrase derived from the importance bucket.
type MissingSkillDetail struct {
	Skill  string `json:"skill"`
	Impact string `json:"impact"`
	Detail string `json:"detail"`
}

// ExplanationPayload is the structured explanation for one RankingResult.
// Field names are a stable contract consumed verbatim by downstream audit
// and API layers; identical inputs always yield byte-identical text.
type ExplanationPayload struct {
	Reason                  string               `json:"reason"`
	MatchedSkillsDetail     []MatchedSkillDetail `json:"matched_skills_detail"`
	MissingSkillsDetail     []MissingSkillDetail `json:"missing_skills_detail"`
	ExperienceAlignmentText string               `json:"experience_alignment_text"`
	SeniorityReasoningText  string               `json:"seniority_reasoning_text"`
	OverallSummary          string               `json:"overall_summary"`
	Recommendation          string               `json:"recommendation"`
}
