package types

// Job represents a job posting as delivered by the job-intake collaborator.
type Job struct {
	ID                        string     `json:"id"`
	Title                     string     `json:"title"`
	Description               string     `json:"description,omitempty"`
	JobLevel                  string     `json:"job_level,omitempty"`
	YearsOfExperienceRequired float64    `json:"years_of_experience_required"`
	RequiredSkills            []JobSkill `json:"required_skills"`
	PreferredSkills           []JobSkill `json:"preferred_skills"`
}

// JobSkill represents one skill declared by a job posting.
// ImportanceScore scales the skill's contribution within its bucket; zero is
// treated as the default of 1.0.
type JobSkill struct {
	Skill              string  `json:"skill"`
	MinimumProficiency string  `json:"minimum_proficiency,omitempty"`
	ImportanceScore    float64 `json:"importance_score,omitempty"`
}

// Importance returns the effective importance score, applying the 1.0 default.
func (s JobSkill) Importance() float64 {
	if s.ImportanceScore <= 0 {
		return 1.0
	}
	if s.ImportanceScore > 1 {
		return 1.0
	}
	return s.ImportanceScore
}
