package ontology

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// File is the on-disk JSON shape of an ontology.
type File struct {
	Skills []Skill `json:"skills"`
}

// Load reads an ontology from a JSON file and builds the registry.
// Edge strengths must be in [0,1] and relation types must be one of the
// declared relation constants.
func Load(path string, logger *zap.Logger) (*Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ontology file %s: %w", path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse ontology JSON: %w", err)
	}

	if err := validateSkills(file.Skills); err != nil {
		return nil, fmt.Errorf("invalid ontology %s: %w", path, err)
	}

	return New(file.Skills, logger), nil
}

func validateSkills(skills []Skill) error {
	if len(skills) == 0 {
		return fmt.Errorf("ontology declares no skills")
	}

	validRelations := map[string]bool{
		RelationRequires:  true,
		RelationImplies:   true,
		RelationRelatedTo: true,
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.Name == "" {
			return fmt.Errorf("skill with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate skill %q", s.Name)
		}
		seen[s.Name] = true

		for _, e := range s.Edges {
			if e.Target == "" {
				return fmt.Errorf("skill %q has an edge with empty target", s.Name)
			}
			if !validRelations[e.Relation] {
				return fmt.Errorf("skill %q has unknown relation %q", s.Name, e.Relation)
			}
			if e.Strength < 0 || e.Strength > 1 {
				return fmt.Errorf("skill %q edge to %q has strength %v outside [0,1]", s.Name, e.Target, e.Strength)
			}
		}
	}

	return nil
}
