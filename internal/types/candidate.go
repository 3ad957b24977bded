// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProficiencyLevel values for CandidateSkill.ProficiencyLevel.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// Source locations for CandidateSkill.MentionedIn.
const (
	SourceSkillsSection = "skills_section"
	SourceExperience    = "experience"
	SourceProjects      = "projects"
	SourceInferred      = "inferred"
)

// Candidate represents a parsed resume as delivered by the parsing collaborator.
// Contact fields are carried for identification only and are never read by scoring.
type Candidate struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	YearsOfExperience float64           `json:"years_of_experience"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education,omitempty"`
	Skills            []CandidateSkill  `json:"skills"`

	// SemanticSimilarity is an optional precomputed similarity between resume
	// text and job text, supplied by an external embedding collaborator.
	SemanticSimilarity *float64 `json:"semantic_similarity,omitempty"`

	// InferredSeniority is populated by the seniority classifier before ranking.
	InferredSeniority *SeniorityResult `json:"inferred_seniority,omitempty"`
}

// ExperienceEntry represents a single work experience entry.
// Dates use the "YYYY-MM" format; an empty EndDate means the role is current.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	EndYear      int    `json:"end_year,omitempty"`
}

// CandidateSkill represents one skill held by a candidate, with provenance.
// Read-only to scoring.
type CandidateSkill struct {
	Skill            string  `json:"skill"`
	ProficiencyLevel string  `json:"proficiency_level"`
	Confidence       float64 `json:"confidence"`
	IsExplicit       bool    `json:"is_explicit"`
	MentionedIn      string  `json:"mentioned_in,omitempty"`
}
