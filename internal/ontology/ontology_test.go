package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOntology() *Ontology {
	return New([]Skill{
		{Name: "Spring Boot", Category: "Web Framework", Aliases: []string{"spring"},
			Edges: []Edge{
				{Target: "Java", Relation: RelationRequires, Strength: 0.95},
				{Target: "Backend Development", Relation: RelationImplies, Strength: 0.9},
			}},
		{Name: "Java", Category: "Programming Language",
			Edges: []Edge{{Target: "Backend Development", Relation: RelationImplies, Strength: 0.8}}},
		{Name: "Backend Development", Category: "Domain"},
		{Name: "Kubernetes", Category: "Cloud", Aliases: []string{"k8s"},
			Edges: []Edge{{Target: "Docker", Relation: RelationRelatedTo, Strength: 0.8}}},
		{Name: "Docker", Category: "Cloud",
			Edges: []Edge{{Target: "Kubernetes", Relation: RelationRelatedTo, Strength: 0.8}}},
	}, nil)
}

func TestNormalize_AliasLookup(t *testing.T) {
	o := testOntology()

	res := o.Normalize("k8s")
	assert.Equal(t, "Kubernetes", res.Canonical)
	assert.True(t, res.Known)
	assert.False(t, res.Ambiguous)

	// Case-insensitive on canonical names too
	res = o.Normalize("JAVA")
	assert.Equal(t, "Java", res.Canonical)
	assert.True(t, res.Known)
}

func TestNormalize_UnknownPassesThrough(t *testing.T) {
	o := testOntology()

	res := o.Normalize("  Quantum Basket Weaving ")
	assert.Equal(t, "Quantum Basket Weaving", res.Canonical)
	assert.False(t, res.Known)
	assert.False(t, res.Ambiguous)
}

func TestNormalize_AmbiguousAlias(t *testing.T) {
	o := New([]Skill{
		{Name: "JavaScript", Aliases: []string{"js"}},
		{Name: "Jenkins Scripts", Aliases: []string{"js"}},
	}, nil)

	res := o.Normalize("js")
	assert.True(t, res.Known)
	assert.True(t, res.Ambiguous)
	// Lexicographically first canonical wins
	assert.Equal(t, "JavaScript", res.Canonical)
}

func TestRelatedSkills_DepthBound(t *testing.T) {
	o := testOntology()

	depth1 := o.RelatedSkills("Spring Boot", 1)
	names := make([]string, 0, len(depth1))
	for _, r := range depth1 {
		names = append(names, r.Skill)
	}
	assert.ElementsMatch(t, []string{"Java", "Backend Development"}, names)

	for _, r := range depth1 {
		assert.Equal(t, 1, r.Distance)
	}
}

func TestRelatedSkills_ClosestDistanceWins(t *testing.T) {
	o := testOntology()

	// Backend Development is reachable at distance 1 (implies) and distance 2
	// (via Java); the closer path must win.
	related := o.RelatedSkills("Spring Boot", 2)
	for _, r := range related {
		if r.Skill == "Backend Development" {
			assert.Equal(t, 1, r.Distance)
			return
		}
	}
	t.Fatal("Backend Development not found in related skills")
}

func TestRelatedSkills_CyclicGraphTerminates(t *testing.T) {
	o := testOntology()

	// Kubernetes <-> Docker is a cycle; traversal must terminate and return
	// each skill once.
	related := o.RelatedSkills("Kubernetes", 10)
	require.Len(t, related, 1)
	assert.Equal(t, "Docker", related[0].Skill)
	assert.Equal(t, RelationRelatedTo, related[0].Relation)
}

func TestRelatedSkills_UnknownSkillEmpty(t *testing.T) {
	o := testOntology()
	assert.Empty(t, o.RelatedSkills("Nonexistent", 2))
}

func TestRelatedSkills_DeterministicOrder(t *testing.T) {
	o := testOntology()

	first := o.RelatedSkills("Spring Boot", 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, o.RelatedSkills("Spring Boot", 2))
	}
}

func TestExpand_StrengthProduct(t *testing.T) {
	o := New([]Skill{
		{Name: "A", Edges: []Edge{{Target: "B", Relation: RelationImplies, Strength: 0.9}}},
		{Name: "B", Edges: []Edge{{Target: "C", Relation: RelationImplies, Strength: 0.8}}},
		{Name: "C"},
	}, nil)

	expansions := o.Expand("A", 2, RelationImplies)
	require.Len(t, expansions, 2)

	assert.Equal(t, "B", expansions[0].Skill)
	assert.InDelta(t, 0.9, expansions[0].Strength, 1e-9)
	assert.Equal(t, "C", expansions[1].Skill)
	assert.InDelta(t, 0.72, expansions[1].Strength, 1e-9)
	assert.Equal(t, 2, expansions[1].Distance)
}

func TestExpand_RelationFilter(t *testing.T) {
	o := testOntology()

	// related_to edges are excluded when expanding over implies/requires only.
	expansions := o.Expand("Kubernetes", 2, RelationImplies, RelationRequires)
	assert.Empty(t, expansions)
}

func TestDefault_ContainsCoreSkills(t *testing.T) {
	o := Default()

	for _, name := range []string{"Python", "Kubernetes", "PostgreSQL", "Machine Learning"} {
		assert.True(t, o.Contains(name), "expected default ontology to contain %s", name)
	}

	// Alias table carries common variants
	res := o.Normalize("golang")
	assert.Equal(t, "Go", res.Canonical)
}
