package ranking

import (
	"fmt"
	"math"
	"sort"
)

// Weight keys accepted in configuration overrides.
const (
	WeightKeySkill      = "skill_match"
	WeightKeyExperience = "experience_match"
	WeightKeySeniority  = "seniority_alignment"
	WeightKeySemantic   = "semantic_similarity"
)

// weightSumTolerance absorbs float rounding when checking that weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights controls the blend of sub-scores in the overall rank score.
// SemanticSimilarity is zero unless the deployment opts into the semantic
// blend and supplies precomputed similarity scores for its candidates.
type Weights struct {
	Skill              float64 `json:"skill_match"`
	Experience         float64 `json:"experience_match"`
	Seniority          float64 `json:"seniority_alignment"`
	SemanticSimilarity float64 `json:"semantic_similarity,omitempty"`
}

// DefaultWeights returns the standard 45/35/20 blend.
func DefaultWeights() Weights {
	return Weights{Skill: 0.45, Experience: 0.35, Seniority: 0.20}
}

// Validate checks that all weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Experience < 0 || w.Seniority < 0 || w.SemanticSimilarity < 0 {
		return &ConfigurationError{Message: "weights must be non-negative"}
	}
	sum := w.Skill + w.Experience + w.Seniority + w.SemanticSimilarity
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigurationError{Message: fmt.Sprintf("weights must sum to 1.0, got %v", sum)}
	}
	return nil
}

// ParseWeights applies configuration overrides on top of the defaults.
// Unknown keys are rejected. A nil or empty map yields the defaults.
func ParseWeights(overrides map[string]float64) (Weights, error) {
	weights := DefaultWeights()
	if len(overrides) == 0 {
		return weights, nil
	}

	// Deterministic error reporting regardless of map iteration order.
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := overrides[key]
		switch key {
		case WeightKeySkill:
			weights.Skill = value
		case WeightKeyExperience:
			weights.Experience = value
		case WeightKeySeniority:
			weights.Seniority = value
		case WeightKeySemantic:
			weights.SemanticSimilarity = value
		default:
			return Weights{}, &ConfigurationError{Message: fmt.Sprintf("unknown weight key %q", key)}
		}
	}

	if err := weights.Validate(); err != nil {
		return Weights{}, err
	}
	return weights, nil
}
