package experience

import (
	"sort"
	"time"

	"github.com/jonathan/resume-screener/internal/ontology"
	"github.com/jonathan/resume-screener/internal/types"
)

// dateLayout is the "YYYY-MM" format used by experience entry dates.
const dateLayout = "2006-01"

// NormalizeCandidate prepares a candidate for scoring: skill names are
// resolved to canonical form through the ontology and deduplicated, and
// years_of_experience is derived from the experience entries when missing.
// Open-ended roles are clamped to now.
func NormalizeCandidate(candidate *types.Candidate, o *ontology.Ontology, now time.Time) {
	NormalizeSkills(candidate, o)

	if candidate.YearsOfExperience == 0 && len(candidate.Experience) > 0 {
		candidate.YearsOfExperience = DeriveYearsOfExperience(candidate.Experience, now)
	}
}

// NormalizeSkills resolves skill names to canonical form and deduplicates
// them. When duplicates collapse, the entry with the highest confidence wins;
// explicit mentions win over inferred ones at equal confidence.
func NormalizeSkills(candidate *types.Candidate, o *ontology.Ontology) {
	byName := make(map[string]types.CandidateSkill, len(candidate.Skills))
	order := make([]string, 0, len(candidate.Skills))

	for _, skill := range candidate.Skills {
		res := o.Normalize(skill.Skill)
		if res.Canonical == "" {
			continue
		}
		skill.Skill = res.Canonical

		existing, seen := byName[res.Canonical]
		if !seen {
			byName[res.Canonical] = skill
			order = append(order, res.Canonical)
			continue
		}
		if skill.Confidence > existing.Confidence ||
			(skill.Confidence == existing.Confidence && skill.IsExplicit && !existing.IsExplicit) {
			byName[res.Canonical] = skill
		}
	}

	normalized := make([]types.CandidateSkill, 0, len(order))
	for _, name := range order {
		normalized = append(normalized, byName[name])
	}
	candidate.Skills = normalized
}

// DeriveYearsOfExperience sums the candidate's experience date ranges after
// merging overlaps, so concurrent roles are not double counted. Entries
// without a parseable start date are skipped; an empty end date means the
// role is current and is clamped to now.
func DeriveYearsOfExperience(entries []types.ExperienceEntry, now time.Time) float64 {
	type span struct {
		start, end time.Time
	}

	spans := make([]span, 0, len(entries))
	for _, entry := range entries {
		start, err := time.Parse(dateLayout, entry.StartDate)
		if err != nil {
			continue
		}

		end := now
		if entry.EndDate != "" {
			parsed, err := time.Parse(dateLayout, entry.EndDate)
			if err != nil || parsed.Before(start) {
				continue
			}
			end = parsed
		}
		if end.After(now) {
			end = now
		}
		if !end.After(start) {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	// Merge overlapping and adjacent ranges.
	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if !s.start.After(last.end) {
			if s.end.After(last.end) {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	var total float64
	for _, s := range merged {
		total += s.end.Sub(s.start).Hours() / (24 * 365.25)
	}
	return total
}
