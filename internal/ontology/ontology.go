// Package ontology provides the skill graph: canonical skill names, alias
// normalization, and depth-bounded traversal over typed skill relationships.
package ontology

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Relation types for skill edges.
const (
	RelationRequires  = "requires"
	RelationImplies   = "implies"
	RelationRelatedTo = "related_to"
)

// DefaultMaxDepth bounds graph traversal when the caller does not specify one.
const DefaultMaxDepth = 2

// Edge is a directed, typed relationship from one skill to another.
// Strength is in [0,1] and scales partial-match credit during matching.
type Edge struct {
	Target   string  `json:"target"`
	Relation string  `json:"relation"`
	Strength float64 `json:"strength"`
}

// Skill is one node in the ontology. Immutable after the ontology is built.
type Skill struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	Edges    []Edge   `json:"edges,omitempty"`
}

// Resolution is the result of normalizing a raw skill name.
// Unknown names pass through unchanged with Known=false.
type Resolution struct {
	Canonical string
	Known     bool
	Ambiguous bool
}

// Related is one skill reached by a bounded graph traversal.
type Related struct {
	Skill    string `json:"skill"`
	Relation string `json:"relation"`
	Distance int    `json:"distance"`
}

// Expansion is one skill reached during match expansion, carrying the
// multiplicative strength decay along the strongest shortest path.
type Expansion struct {
	Skill    string
	Relation string
	Distance int
	Strength float64
}

// Ontology is a read-only registry of skills keyed by canonical name.
// Skills reference each other by name only, so cycles are representable;
// all traversals guard with a visited set and terminate on cyclic graphs.
type Ontology struct {
	skills    map[string]*Skill
	aliases   map[string]string
	ambiguous map[string]bool
}

// New builds an ontology from a skill list. Alias collisions (one alias
// mapping to multiple canonical names) resolve to the lexicographically
// first canonical name; each collision is logged as a warning and flagged
// on every later Normalize call for that alias.
func New(skills []Skill, logger *zap.Logger) *Ontology {
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &Ontology{
		skills:    make(map[string]*Skill, len(skills)),
		aliases:   make(map[string]string),
		ambiguous: make(map[string]bool),
	}

	for i := range skills {
		s := skills[i]
		o.skills[s.Name] = &s
	}

	// Deterministic alias resolution: register in sorted canonical-name order
	// so the lexicographically first canonical wins collisions.
	names := make([]string, 0, len(o.skills))
	for name := range o.skills {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		o.registerAlias(name, name, logger)
		for _, alias := range o.skills[name].Aliases {
			o.registerAlias(alias, name, logger)
		}
	}

	return o
}

func (o *Ontology) registerAlias(alias, canonical string, logger *zap.Logger) {
	key := strings.ToLower(strings.TrimSpace(alias))
	if key == "" {
		return
	}
	existing, ok := o.aliases[key]
	if !ok {
		o.aliases[key] = canonical
		return
	}
	if existing != canonical {
		o.ambiguous[key] = true
		logger.Warn("ambiguous skill alias",
			zap.String("alias", alias),
			zap.String("resolved_to", existing),
			zap.String("conflicting", canonical))
	}
}

// Normalize resolves a raw skill name to its canonical form via
// case-insensitive alias lookup. Unknown names pass through unchanged.
func (o *Ontology) Normalize(raw string) Resolution {
	trimmed := strings.TrimSpace(raw)
	key := strings.ToLower(trimmed)
	if canonical, ok := o.aliases[key]; ok {
		return Resolution{Canonical: canonical, Known: true, Ambiguous: o.ambiguous[key]}
	}
	return Resolution{Canonical: trimmed, Known: false}
}

// Contains reports whether name is a canonical skill in the ontology.
func (o *Ontology) Contains(name string) bool {
	_, ok := o.skills[name]
	return ok
}

// Categories returns canonical name -> category for all skills.
func (o *Ontology) Categories() map[string]string {
	out := make(map[string]string, len(o.skills))
	for name, s := range o.skills {
		out[name] = s.Category
	}
	return out
}

// RelatedSkills returns every skill reachable from name within maxDepth hops,
// each at most once at its closest distance, in deterministic order
// (distance, then name). Unknown skills return an empty set.
func (o *Ontology) RelatedSkills(name string, maxDepth int) []Related {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	res := o.Normalize(name)
	expansions := o.expand(res.Canonical, maxDepth, nil)

	related := make([]Related, 0, len(expansions))
	for _, e := range expansions {
		related = append(related, Related{Skill: e.Skill, Relation: e.Relation, Distance: e.Distance})
	}
	return related
}

// Expand traverses outgoing edges from name, restricted to the given relation
// types (all types when empty), tracking the strength product along the path.
// Used by the matcher for partial-credit expansion.
func (o *Ontology) Expand(name string, maxDepth int, relations ...string) []Expansion {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	allowed := make(map[string]bool, len(relations))
	for _, r := range relations {
		allowed[r] = true
	}
	return o.expand(name, maxDepth, allowed)
}

// expand is a breadth-first walk with a visited set: each node is reached at
// most once, at its closest distance. Among equal-distance paths the highest
// strength product wins.
func (o *Ontology) expand(start string, maxDepth int, allowed map[string]bool) []Expansion {
	_, ok := o.skills[start]
	if !ok {
		return nil
	}

	visited := map[string]Expansion{start: {Skill: start, Strength: 1.0}}
	frontier := []string{start}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		discovered := make(map[string]Expansion)
		for _, name := range frontier {
			node, ok := o.skills[name]
			if !ok {
				continue
			}
			from := visited[name]
			for _, edge := range node.Edges {
				if len(allowed) > 0 && !allowed[edge.Relation] {
					continue
				}
				if edge.Target == start {
					continue
				}
				if _, seen := visited[edge.Target]; seen {
					continue
				}
				strength := from.Strength * edge.Strength
				if prev, ok := discovered[edge.Target]; ok && prev.Strength >= strength {
					continue
				}
				discovered[edge.Target] = Expansion{
					Skill:    edge.Target,
					Relation: edge.Relation,
					Distance: depth,
					Strength: strength,
				}
			}
		}

		frontier = frontier[:0]
		for name, exp := range discovered {
			visited[name] = exp
			frontier = append(frontier, name)
		}
		sort.Strings(frontier)
	}

	out := make([]Expansion, 0, len(visited)-1)
	for name, exp := range visited {
		if name == start {
			continue
		}
		out = append(out, exp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}
