// Package seniority infers a discrete seniority level and confidence from
// years of experience, role progression, and skill depth.
package seniority

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/ontology"
	"github.com/jonathan/resume-screener/internal/types"
)

// Classifier infers candidate seniority. The ontology supplies skill
// categories for the depth signal; the classifier itself holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	categories map[string]string
}

// NewClassifier creates a Classifier backed by the given ontology.
func NewClassifier(o *ontology.Ontology) *Classifier {
	return &Classifier{categories: o.Categories()}
}

// Infer combines the three seniority signals (40/30/30) into a discrete
// level with a confidence score. Reasoning always carries one entry per
// signal, so it is never empty.
func (c *Classifier) Infer(candidate *types.Candidate) *types.SeniorityResult {
	expScore := experienceSignal(candidate.YearsOfExperience)
	progScore, progReason := progressionSignal(candidate.Experience)
	depthScore, depthCategories := depthSignal(candidate.Skills, c.categories)

	combined := experienceWeight*expScore + progressionWeight*progScore + depthWeight*depthScore
	level := types.SeniorityLevels[bandIndex(combined)]

	// Confidence is the normalized agreement across signals: the wider the
	// spread between the levels each signal implies on its own, the lower
	// the confidence.
	indices := []int{bandIndex(expScore), bandIndex(progScore), bandIndex(depthScore)}
	spread := maxInt(indices) - minInt(indices)
	confidence := 1.0 - float64(spread)/float64(len(types.SeniorityLevels)-1)
	if confidence < 0.25 {
		confidence = 0.25
	}

	reasoning := []string{
		fmt.Sprintf("Years of experience: %.1f maps to %s", candidate.YearsOfExperience,
			displayLevel(types.SeniorityLevels[bandIndex(expScore)])),
		progReason,
		fmt.Sprintf("%d skill categories at advanced or expert proficiency", depthCategories),
	}

	return &types.SeniorityResult{
		Level:             level,
		Confidence:        confidence,
		Reasoning:         reasoning,
		ExperienceSignal:  expScore,
		ProgressionSignal: progScore,
		DepthSignal:       depthScore,
		CombinedScore:     combined,
	}
}

// ParseLevel resolves a declared job level string to its numeric index.
// Matching is lenient about case, hyphens and spacing ("Mid-Level" and
// "mid level" both resolve). Returns false for blank or unknown levels.
func ParseLevel(level string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	if normalized == "mid" {
		normalized = types.SeniorityMidLevel
	}
	for i, name := range types.SeniorityLevels {
		if normalized == name {
			return i, true
		}
	}
	return 0, false
}

// displayLevel renders a level constant for human-readable text.
func displayLevel(level string) string {
	return strings.ReplaceAll(level, "_", " ")
}

func maxInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
