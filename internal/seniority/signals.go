package seniority

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Signal weights for combining the three seniority signals.
const (
	experienceWeight  = 0.40
	progressionWeight = 0.30
	depthWeight       = 0.30
)

// Year boundaries between seniority levels.
const (
	internYears = 1.0
	juniorYears = 2.0
	midYears    = 5.0
	seniorYears = 10.0
)

// bandWidth is the score range owned by each seniority level on the [0,100]
// signal scale.
var bandWidth = 100.0 / float64(len(types.SeniorityLevels))

// Title keyword tables for role-level classification, from most to least
// senior. Order matters: the first table containing a match wins.
var (
	leadKeywords   = []string{"director", "head", "vp", "cto", "ceo", "founder", "lead"}
	seniorKeywords = []string{"senior", "principal", "staff", "architect", "manager"}
	midKeywords    = []string{"mid", "specialist", "engineer ii", "developer ii"}
	juniorKeywords = []string{"junior", "intern", "entry", "associate", "graduate", "trainee"}
)

// experienceSignal maps years of experience to [0,100]. Each level owns a
// 20-point band and the score interpolates linearly with years inside the
// band, so the score reflects distance from the nearest level boundary
// instead of cliffing at it.
func experienceSignal(years float64) float64 {
	switch {
	case years <= 0:
		return 0
	case years < internYears:
		return bandWidth * years
	case years < juniorYears:
		return bandWidth + bandWidth*(years-internYears)
	case years < midYears:
		return 2*bandWidth + bandWidth*(years-juniorYears)/(midYears-juniorYears)
	case years < seniorYears:
		return 3*bandWidth + bandWidth*(years-midYears)/(seniorYears-midYears)
	default:
		score := 4*bandWidth + 2*(years-seniorYears)
		if score > 100 {
			return 100
		}
		return score
	}
}

// progressionSignal inspects the ordered experience sequence for seniority
// keyword escalation across consecutive roles. Upward trajectories are
// rewarded; flat or absent history scores neutrally.
func progressionSignal(entries []types.ExperienceEntry) (float64, string) {
	if len(entries) < 2 {
		return 50, "Not enough role history to assess progression"
	}

	escalations := 0
	declines := 0
	prev := titleLevel(entries[0].Title)
	for _, entry := range entries[1:] {
		level := titleLevel(entry.Title)
		if level > prev {
			escalations++
		} else if level < prev {
			declines++
		}
		prev = level
	}

	switch {
	case escalations > 0:
		bonus := escalations
		if bonus > 3 {
			bonus = 3
		}
		return 70 + 10*float64(bonus), "Upward title progression detected across roles"
	case declines > escalations:
		return 30, "Title history trends downward"
	default:
		return 50, "No clear title progression across roles"
	}
}

// titleLevel classifies a role title into a numeric seniority level using
// keyword tables. Unrecognized titles default to junior.
func titleLevel(title string) int {
	t := strings.ToLower(title)

	for _, kw := range leadKeywords {
		if strings.Contains(t, kw) {
			// "lead" also appears in titles like "team lead engineer" but a
			// bare "senior" match must not be shadowed by it.
			if kw == "lead" && strings.Contains(t, "senior") {
				return 3
			}
			return 4
		}
	}
	for _, kw := range seniorKeywords {
		if strings.Contains(t, kw) {
			return 3
		}
	}
	for _, kw := range midKeywords {
		if strings.Contains(t, kw) {
			return 2
		}
	}
	for _, kw := range juniorKeywords {
		if strings.Contains(t, kw) {
			return 1
		}
	}
	return 1
}

// depthSignal scores breadth and depth together: the count of distinct skill
// categories the candidate holds at advanced or expert proficiency.
func depthSignal(skills []types.CandidateSkill, categories map[string]string) (float64, int) {
	deep := make(map[string]struct{})
	for _, skill := range skills {
		if skill.ProficiencyLevel != types.ProficiencyAdvanced && skill.ProficiencyLevel != types.ProficiencyExpert {
			continue
		}
		if category := categories[skill.Skill]; category != "" {
			deep[category] = struct{}{}
		}
	}

	count := len(deep)
	var score float64
	switch {
	case count == 0:
		score = 0
	case count == 1:
		score = 40
	case count == 2:
		score = 60
	case count == 3:
		score = 80
	default:
		score = 100
	}
	return score, count
}

// bandIndex maps a [0,100] signal score to the seniority level it implies.
func bandIndex(score float64) int {
	idx := int(score / bandWidth)
	if idx >= len(types.SeniorityLevels) {
		idx = len(types.SeniorityLevels) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
