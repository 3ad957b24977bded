package types

// Match types for MatchedSkill.MatchType.
const (
	MatchDirect   = "direct"
	MatchInferred = "inferred"
)

// Impact buckets for MissingSkill.Impact.
const (
	ImpactCritical = "critical"
	ImpactModerate = "moderate"
	ImpactMinor    = "minor"
)

// MatchedSkill records how one job skill was satisfied by the candidate.
// MatchType is a tagged variant: "direct" matches carry only the skill name,
// "inferred" matches additionally carry ViaSkill, Relation and Distance.
type MatchedSkill struct {
	Skill     string  `json:"skill"`
	Required  bool    `json:"required"`
	MatchType string  `json:"match_type"`
	ViaSkill  string  `json:"via_skill,omitempty"`
	Relation  string  `json:"relation,omitempty"`
	Distance  int     `json:"distance,omitempty"`
	Credit    float64 `json:"credit"`
	Ambiguous bool    `json:"ambiguous,omitempty"`
}

// MissingSkill records one job skill the candidate does not hold.
type MissingSkill struct {
	Skill    string `json:"skill"`
	Required bool   `json:"required"`
	Impact   string `json:"impact"`
}

// SkillMatch is the full output of the skill matcher for one candidate-job pair.
type SkillMatch struct {
	Score         float64        `json:"score"`
	MatchedSkills []MatchedSkill `json:"matched_skills"`
	MissingSkills []MissingSkill `json:"missing_skills"`
}

// RankingResult holds all scores for one candidate against one job.
// Results are created fresh on every ranking invocation and never mutated;
// re-ranking produces new results.
type RankingResult struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	JobID         string `json:"job_id"`

	SkillMatchScore         float64 `json:"skill_match_score"`
	ExperienceMatchScore    float64 `json:"experience_match_score"`
	SeniorityAlignmentScore float64 `json:"seniority_alignment_score"`
	OverallRankScore        float64 `json:"overall_rank_score"`

	RankPosition int     `json:"rank_position"`
	Percentile   float64 `json:"percentile"`

	MatchedSkills []MatchedSkill `json:"matched_skills"`
	MissingSkills []MissingSkill `json:"missing_skills"`

	Seniority *SeniorityResult `json:"seniority,omitempty"`

	Explanation *ExplanationPayload `json:"explanation,omitempty"`
}

// SkippedCandidate reports a candidate excluded from a batch rank with the
// reason for the exclusion. One bad candidate never aborts the batch.
type SkippedCandidate struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`
	Reason        string `json:"reason"`
}

// RankingOutcome is the full result of one rank invocation.
type RankingOutcome struct {
	JobID   string             `json:"job_id"`
	Results []RankingResult    `json:"results"`
	Skipped []SkippedCandidate `json:"skipped,omitempty"`
}
