package ranking

import (
	"github.com/jonathan/resume-screener/internal/seniority"
)

// Experience decay anchors: 100 at the requirement, 70 at one year under,
// 40 at two years under, then a gentler slope down to the floor. The curve
// interpolates linearly between anchors so a near-miss never zero-scores.
const (
	experienceFloor      = 10.0
	firstYearSlope       = 30.0
	secondYearSlope      = 30.0
	beyondTwoYearsSlope  = 15.0
	seniorityStepPenalty = 25.0
	seniorityFloor       = 10.0
)

// experienceMatchScore scores candidate years against the job requirement.
// At or above the requirement scores 100; over-qualification is capped, not
// rewarded. A job with no required years never produces a penalty.
func experienceMatchScore(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 100
	}

	deficit := requiredYears - candidateYears
	switch {
	case deficit <= 0:
		return 100
	case deficit <= 1:
		return 100 - firstYearSlope*deficit
	case deficit <= 2:
		return 70 - secondYearSlope*(deficit-1)
	default:
		score := 40 - beyondTwoYearsSlope*(deficit-2)
		if score < experienceFloor {
			return experienceFloor
		}
		return score
	}
}

// seniorityAlignmentScore scores the candidate's inferred level against the
// job's declared level. Over-qualification is accepted at full score; each
// level of shortfall costs a fixed step. A job that declares no parseable
// level imposes no constraint.
func seniorityAlignmentScore(candidateLevel, jobLevel string) float64 {
	jobIdx, ok := seniority.ParseLevel(jobLevel)
	if !ok {
		return 100
	}
	candidateIdx, ok := seniority.ParseLevel(candidateLevel)
	if !ok {
		candidateIdx = 0
	}

	shortfall := jobIdx - candidateIdx
	if shortfall <= 0 {
		return 100
	}

	score := 100 - seniorityStepPenalty*float64(shortfall)
	if score < seniorityFloor {
		return seniorityFloor
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
