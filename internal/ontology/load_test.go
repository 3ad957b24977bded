package ontology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOntologyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ontology.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeOntologyFile(t, `{
		"skills": [
			{"name": "Haskell", "category": "Programming Language", "aliases": ["hs"],
			 "edges": [{"target": "Functional Programming", "relation": "implies", "strength": 0.9}]},
			{"name": "Functional Programming", "category": "Domain"}
		]
	}`)

	o, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, o.Contains("Haskell"))
	res := o.Normalize("hs")
	assert.Equal(t, "Haskell", res.Canonical)

	related := o.RelatedSkills("Haskell", 2)
	require.Len(t, related, 1)
	assert.Equal(t, "Functional Programming", related[0].Skill)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read ontology file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeOntologyFile(t, `{"skills": [`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse ontology JSON")
}

func TestLoad_EmptySkillList(t *testing.T) {
	path := writeOntologyFile(t, `{"skills": []}`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no skills")
}

func TestLoad_RejectsUnknownRelation(t *testing.T) {
	path := writeOntologyFile(t, `{
		"skills": [
			{"name": "A", "edges": [{"target": "B", "relation": "resembles", "strength": 0.5}]},
			{"name": "B"}
		]
	}`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown relation")
}

func TestLoad_RejectsStrengthOutOfRange(t *testing.T) {
	path := writeOntologyFile(t, `{
		"skills": [
			{"name": "A", "edges": [{"target": "B", "relation": "implies", "strength": 1.5}]},
			{"name": "B"}
		]
	}`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,1]")
}

func TestLoad_RejectsDuplicateSkill(t *testing.T) {
	path := writeOntologyFile(t, `{
		"skills": [{"name": "A"}, {"name": "A"}]
	}`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate skill")
}
