package ontology

// Skill categories used by the built-in ontology.
const (
	CategoryProgramming  = "Programming Language"
	CategoryWebFramework = "Web Framework"
	CategoryDatabase     = "Database"
	CategoryCloud        = "Cloud"
	CategoryDataScience  = "Data Science"
	CategoryDomain       = "Domain"
	CategoryArchitecture = "Architecture"
)

// defaultSkills is the built-in skill graph used when no ontology file is
// supplied. Edges are directed from the more specific skill to the skill it
// requires or implies.
var defaultSkills = []Skill{
	// Programming languages
	{Name: "Python", Category: CategoryProgramming, Aliases: []string{"python3", "py"},
		Edges: []Edge{{Target: "Backend Development", Relation: RelationImplies, Strength: 0.8}}},
	{Name: "Java", Category: CategoryProgramming,
		Edges: []Edge{{Target: "Backend Development", Relation: RelationImplies, Strength: 0.8}}},
	{Name: "JavaScript", Category: CategoryProgramming, Aliases: []string{"js", "ecmascript"}},
	{Name: "TypeScript", Category: CategoryProgramming, Aliases: []string{"ts"},
		Edges: []Edge{{Target: "JavaScript", Relation: RelationImplies, Strength: 0.9}}},
	{Name: "C++", Category: CategoryProgramming, Aliases: []string{"cpp"}},
	{Name: "Go", Category: CategoryProgramming, Aliases: []string{"golang", "go lang"},
		Edges: []Edge{{Target: "Backend Development", Relation: RelationImplies, Strength: 0.8}}},
	{Name: "Rust", Category: CategoryProgramming},

	// Web frameworks
	{Name: "React", Category: CategoryWebFramework, Aliases: []string{"react.js", "reactjs"},
		Edges: []Edge{
			{Target: "JavaScript", Relation: RelationRequires, Strength: 0.9},
			{Target: "Frontend Development", Relation: RelationImplies, Strength: 0.9},
		}},
	{Name: "Angular", Category: CategoryWebFramework, Aliases: []string{"angularjs"},
		Edges: []Edge{
			{Target: "TypeScript", Relation: RelationRequires, Strength: 0.85},
			{Target: "Frontend Development", Relation: RelationImplies, Strength: 0.9},
		}},
	{Name: "Vue.js", Category: CategoryWebFramework, Aliases: []string{"vue", "vuejs"},
		Edges: []Edge{{Target: "JavaScript", Relation: RelationRequires, Strength: 0.9}}},
	{Name: "Node.js", Category: CategoryWebFramework, Aliases: []string{"node", "nodejs"},
		Edges: []Edge{
			{Target: "JavaScript", Relation: RelationRequires, Strength: 0.9},
			{Target: "Backend Development", Relation: RelationImplies, Strength: 0.85},
		}},
	{Name: "Django", Category: CategoryWebFramework,
		Edges: []Edge{
			{Target: "Python", Relation: RelationRequires, Strength: 0.95},
			{Target: "Backend Development", Relation: RelationImplies, Strength: 0.9},
		}},
	{Name: "Flask", Category: CategoryWebFramework,
		Edges: []Edge{{Target: "Python", Relation: RelationRequires, Strength: 0.95}}},
	{Name: "Spring Boot", Category: CategoryWebFramework, Aliases: []string{"spring", "springboot"},
		Edges: []Edge{
			{Target: "Java", Relation: RelationRequires, Strength: 0.95},
			{Target: "Backend Development", Relation: RelationImplies, Strength: 0.9},
		}},
	{Name: "Express.js", Category: CategoryWebFramework, Aliases: []string{"express", "expressjs"},
		Edges: []Edge{{Target: "Node.js", Relation: RelationRequires, Strength: 0.9}}},

	// Databases
	{Name: "SQL", Category: CategoryDatabase},
	{Name: "PostgreSQL", Category: CategoryDatabase, Aliases: []string{"postgres", "psql"},
		Edges: []Edge{{Target: "SQL", Relation: RelationImplies, Strength: 0.9}}},
	{Name: "MySQL", Category: CategoryDatabase,
		Edges: []Edge{{Target: "SQL", Relation: RelationImplies, Strength: 0.9}}},
	{Name: "MongoDB", Category: CategoryDatabase, Aliases: []string{"mongo"}},
	{Name: "Redis", Category: CategoryDatabase},
	{Name: "Elasticsearch", Category: CategoryDatabase, Aliases: []string{"elastic search"}},

	// Cloud and infrastructure
	{Name: "AWS", Category: CategoryCloud, Aliases: []string{"amazon web services"}},
	{Name: "Azure", Category: CategoryCloud},
	{Name: "GCP", Category: CategoryCloud, Aliases: []string{"google cloud", "google cloud platform"}},
	{Name: "Docker", Category: CategoryCloud,
		Edges: []Edge{{Target: "DevOps", Relation: RelationImplies, Strength: 0.8}}},
	{Name: "Kubernetes", Category: CategoryCloud, Aliases: []string{"k8s"},
		Edges: []Edge{
			{Target: "DevOps", Relation: RelationImplies, Strength: 0.85},
			{Target: "Docker", Relation: RelationRelatedTo, Strength: 0.8},
		}},

	// Data science
	{Name: "Machine Learning", Category: CategoryDataScience, Aliases: []string{"ml"}},
	{Name: "Deep Learning", Category: CategoryDataScience,
		Edges: []Edge{{Target: "Machine Learning", Relation: RelationImplies, Strength: 0.9}}},
	{Name: "TensorFlow", Category: CategoryDataScience,
		Edges: []Edge{{Target: "Machine Learning", Relation: RelationImplies, Strength: 0.85}}},
	{Name: "PyTorch", Category: CategoryDataScience,
		Edges: []Edge{{Target: "Machine Learning", Relation: RelationImplies, Strength: 0.85}}},
	{Name: "Scikit-learn", Category: CategoryDataScience, Aliases: []string{"sklearn"},
		Edges: []Edge{{Target: "Machine Learning", Relation: RelationImplies, Strength: 0.8}}},
	{Name: "Pandas", Category: CategoryDataScience,
		Edges: []Edge{{Target: "Python", Relation: RelationRequires, Strength: 0.9}}},
	{Name: "NumPy", Category: CategoryDataScience,
		Edges: []Edge{{Target: "Python", Relation: RelationRequires, Strength: 0.9}}},

	// Domains
	{Name: "Backend Development", Category: CategoryDomain, Aliases: []string{"backend"}},
	{Name: "Frontend Development", Category: CategoryDomain, Aliases: []string{"frontend"}},
	{Name: "Full Stack Development", Category: CategoryDomain, Aliases: []string{"full stack", "fullstack"}},
	{Name: "DevOps", Category: CategoryDomain},
	{Name: "Data Engineering", Category: CategoryDomain},

	// APIs and architecture
	{Name: "REST API", Category: CategoryArchitecture, Aliases: []string{"rest", "restful api"}},
	{Name: "GraphQL", Category: CategoryArchitecture},
	{Name: "Microservices", Category: CategoryArchitecture, Aliases: []string{"micro services"}},
}

// Default returns the built-in ontology.
func Default() *Ontology {
	return New(defaultSkills, nil)
}
