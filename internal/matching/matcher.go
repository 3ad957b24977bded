// Package matching computes matched and missing skill sets between a
// candidate and a job, using direct and ontology-expanded matching.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/ontology"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// preferredFactor is the weight of the preferred bucket relative to the
	// required bucket in the skill-match score formula.
	preferredFactor = 0.5

	// partialCreditCap keeps ontology-inferred matches strictly below full
	// direct-match credit regardless of edge strength.
	partialCreditCap = 0.75

	// expansionDepth bounds ontology expansion when matching.
	expansionDepth = 2
)

// Matcher matches candidate skills against job requirements. The ontology is
// read-only after construction, so one Matcher is safe for concurrent use.
type Matcher struct {
	ontology *ontology.Ontology
}

// NewMatcher creates a Matcher backed by the given ontology.
func NewMatcher(o *ontology.Ontology) *Matcher {
	return &Matcher{ontology: o}
}

// candidateSkill is one candidate skill after normalization.
type candidateSkill struct {
	canonical string
	ambiguous bool
}

// Match computes the skill match between a candidate's skills and a job's
// required and preferred skills. A job with zero declared skills yields
// score 100 for every candidate (vacuous match).
func (m *Matcher) Match(skills []types.CandidateSkill, job *types.Job) *types.SkillMatch {
	// Keyed by case-folded canonical name so skills outside the ontology
	// still match on name regardless of casing.
	held := make(map[string]candidateSkill, len(skills))
	for _, s := range skills {
		res := m.ontology.Normalize(s.Skill)
		if res.Canonical == "" {
			continue
		}
		key := strings.ToLower(res.Canonical)
		existing, ok := held[key]
		if !ok || (existing.ambiguous && !res.Ambiguous) {
			held[key] = candidateSkill{canonical: res.Canonical, ambiguous: res.Ambiguous}
		}
	}

	match := &types.SkillMatch{
		MatchedSkills: []types.MatchedSkill{},
		MissingSkills: []types.MissingSkill{},
	}

	matchedRequired, totalRequired := m.matchBucket(match, held, job.RequiredSkills, true)
	matchedPreferred, totalPreferred := m.matchBucket(match, held, job.PreferredSkills, false)

	denominator := totalRequired + preferredFactor*totalPreferred
	if denominator == 0 {
		match.Score = 100.0
		return match
	}

	score := 100.0 * (matchedRequired + preferredFactor*matchedPreferred) / denominator
	match.Score = clamp(score, 0, 100)
	return match
}

// matchBucket matches one bucket of job skills (required or preferred) and
// returns the matched and total importance-weighted sums for the bucket.
func (m *Matcher) matchBucket(match *types.SkillMatch, held map[string]candidateSkill, bucket []types.JobSkill, required bool) (matched, total float64) {
	for _, jobSkill := range bucket {
		res := m.ontology.Normalize(jobSkill.Skill)
		if res.Canonical == "" {
			continue
		}
		weight := jobSkill.Importance()
		total += weight

		// Direct match: full credit.
		if cand, ok := held[strings.ToLower(res.Canonical)]; ok {
			matched += weight
			match.MatchedSkills = append(match.MatchedSkills, types.MatchedSkill{
				Skill:     res.Canonical,
				Required:  required,
				MatchType: types.MatchDirect,
				Credit:    weight,
				Ambiguous: res.Ambiguous || cand.ambiguous,
			})
			continue
		}

		// Ontology expansion: partial credit scaled by path strength, capped
		// below direct-match credit.
		if inferred, ok := m.inferMatch(res.Canonical, held); ok {
			credit := weight * inferred.Strength
			if limit := weight * partialCreditCap; credit > limit {
				credit = limit
			}
			matched += credit
			match.MatchedSkills = append(match.MatchedSkills, types.MatchedSkill{
				Skill:     res.Canonical,
				Required:  required,
				MatchType: types.MatchInferred,
				ViaSkill:  inferred.Via,
				Relation:  inferred.Relation,
				Distance:  inferred.Distance,
				Credit:    credit,
				Ambiguous: res.Ambiguous,
			})
			continue
		}

		impact := types.ImpactMinor
		if required {
			impact = impactBucket(weight)
		}
		match.MissingSkills = append(match.MissingSkills, types.MissingSkill{
			Skill:    res.Canonical,
			Required: required,
			Impact:   impact,
		})
	}
	return matched, total
}

// inference records how an unheld job skill was inferred from a held skill.
type inference struct {
	Via      string
	Relation string
	Distance int
	Strength float64
}

// inferMatch expands each held skill over implies/requires edges and returns
// the strongest path reaching the job skill. Held skills are visited in
// sorted order so ties resolve deterministically.
func (m *Matcher) inferMatch(jobSkill string, held map[string]candidateSkill) (inference, bool) {
	keys := make([]string, 0, len(held))
	for key := range held {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var best inference
	found := false
	for _, key := range keys {
		via := held[key].canonical
		for _, exp := range m.ontology.Expand(via, expansionDepth, ontology.RelationImplies, ontology.RelationRequires) {
			if exp.Skill != jobSkill {
				continue
			}
			if !found || exp.Strength > best.Strength {
				best = inference{Via: via, Relation: exp.Relation, Distance: exp.Distance, Strength: exp.Strength}
				found = true
			}
		}
	}
	return best, found
}

// impactBucket maps an importance weight to a severity phrase. Missing
// preferred skills always record minor impact regardless of importance.
func impactBucket(weight float64) string {
	switch {
	case weight >= 0.8:
		return types.ImpactCritical
	case weight >= 0.4:
		return types.ImpactModerate
	default:
		return types.ImpactMinor
	}
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
