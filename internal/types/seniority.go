package types

// Seniority levels, ordered from least to most senior.
const (
	SeniorityIntern   = "intern"
	SeniorityJunior   = "junior"
	SeniorityMidLevel = "mid_level"
	SenioritySenior   = "senior"
	SeniorityLead     = "lead"
)

// SeniorityLevels lists all levels in ascending order. The slice index is the
// numeric level used for alignment scoring.
var SeniorityLevels = []string{
	SeniorityIntern,
	SeniorityJunior,
	SeniorityMidLevel,
	SenioritySenior,
	SeniorityLead,
}

// SeniorityResult is the output of the seniority classifier.
// Reasoning always contains one entry per signal and is never empty.
type SeniorityResult struct {
	Level      string   `json:"level"`
	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning"`

	// Per-signal scores, each in [0,100].
	ExperienceSignal  float64 `json:"experience_signal"`
	ProgressionSignal float64 `json:"progression_signal"`
	DepthSignal       float64 `json:"depth_signal"`
	CombinedScore     float64 `json:"combined_score"`
}
