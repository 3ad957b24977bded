package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ontology"
)

var relatedSkillsCmd = &cobra.Command{
	Use:   "related-skills <skill>",
	Short: "List skills related to a skill in the ontology",
	Long:  "Performs a depth-bounded traversal of the skill ontology from the given skill and prints every reachable skill with its relation type and distance.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelatedSkills,
}

var relatedSkillsDepth int

func init() {
	relatedSkillsCmd.Flags().IntVarP(&relatedSkillsDepth, "depth", "d", ontology.DefaultMaxDepth, "Maximum traversal depth")

	rootCmd.AddCommand(relatedSkillsCmd)
}

func runRelatedSkills(_ *cobra.Command, args []string) error {
	env, err := buildEnvironment()
	if err != nil {
		return err
	}

	related := env.skills.RelatedSkills(args[0], relatedSkillsDepth)
	return writeJSON("", related)
}
