package services

import "strings"

// Skill aliases map shorthand spellings onto the canonical vocabulary term.
var skillAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"node":       "node.js",
	"nodejs":     "node.js",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"angular.js": "angular",
	"angularjs":  "angular",
	"postgres":   "postgresql",
	"mongo":      "mongodb",
	"k8s":        "kubernetes",
	"ml":         "machine learning",
	"dl":         "deep learning",
	"ai":         "artificial intelligence",
	"nlp":        "natural language processing",
	"cv":         "computer vision",
	"aws":        "amazon web services",
	"gcp":        "google cloud platform",
	"ci/cd":      "ci/cd",
	"cicd":       "ci/cd",
	"dotnet":     ".net",
	"csharp":     "c#",
	"cpp":        "c++",
	"golang":     "go",
	"tf":         "terraform",
	"ui":         "ui/ux",
	"ux":         "ui/ux",
}

var programmingLanguages = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r programming", "matlab",
	"perl", "bash", "shell scripting", "powershell", "objective-c", "dart",
}

var frameworksLibraries = []string{
	"react", "angular", "vue", "node.js", "express", "django", "flask",
	"fastapi", "spring", "spring boot", ".net", "rails", "laravel",
	"next.js", "nuxt.js", "svelte", "jquery", "bootstrap", "tailwind",
	"material ui", "redux", "mobx", "graphql", "rest api",
}

var databases = []string{
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"cassandra", "dynamodb", "oracle", "sqlite", "neo4j", "firebase",
	"snowflake", "bigquery", "couchdb", "mariadb",
}

var cloudDevops = []string{
	"aws", "amazon web services", "azure", "gcp", "google cloud platform",
	"docker", "kubernetes", "jenkins", "terraform", "ansible", "ci/cd",
	"github actions", "gitlab ci", "circleci", "nginx", "apache",
	"linux", "unix", "devops", "microservices", "serverless",
}

var dataAIML = []string{
	"machine learning", "deep learning", "artificial intelligence",
	"data analysis", "data science", "pandas", "numpy", "tensorflow",
	"pytorch", "keras", "scikit-learn", "natural language processing",
	"computer vision", "opencv", "hadoop", "spark", "airflow",
	"power bi", "tableau", "excel", "data visualization", "statistics",
}

var toolsPlatforms = []string{
	"git", "github", "gitlab", "bitbucket", "jira", "confluence",
	"slack", "figma", "adobe xd", "photoshop", "illustrator",
	"vs code", "intellij", "postman", "swagger", "jupyter",
}

var softSkills = []string{
	"communication", "teamwork", "leadership", "problem solving",
	"time management", "critical thinking", "adaptability", "creativity",
	"collaboration", "attention to detail", "project management",
	"analytical skills", "interpersonal skills", "decision making",
	"conflict resolution", "presentation skills", "negotiation",
	"customer service", "mentoring", "strategic thinking",
	"public speaking", "technical writing", "research", "agile", "scrum",
}

// Skill category identifiers used in analysis output and suggestions.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryDatabases   = "databases"
	CategoryCloudDevops = "cloud_devops"
	CategoryDataAI      = "data_ai"
	CategoryTools       = "tools"
	CategorySoftSkills  = "soft_skills"
)

// skillCategories preserves declaration order for deterministic categorization.
var skillCategories = []struct {
	name   string
	skills []string
}{
	{CategoryProgramming, programmingLanguages},
	{CategoryFrameworks, frameworksLibraries},
	{CategoryDatabases, databases},
	{CategoryCloudDevops, cloudDevops},
	{CategoryDataAI, dataAIML},
	{CategoryTools, toolsPlatforms},
	{CategorySoftSkills, softSkills},
}

// AllSkills returns the full reference vocabulary in category order.
func AllSkills() []string {
	var all []string
	for _, c := range skillCategories {
		all = append(all, c.skills...)
	}
	return all
}

// NormalizeSkill maps an alias onto its canonical vocabulary term. Terms
// without an alias pass through lowercased.
func NormalizeSkill(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	return lower
}

// CategorizeSkills groups skills by vocabulary category. Skills outside the
// vocabulary are omitted.
func CategorizeSkills(skills []string) map[string][]string {
	categories := map[string][]string{
		CategoryProgramming: {},
		CategoryFrameworks:  {},
		CategoryDatabases:   {},
		CategoryCloudDevops: {},
		CategoryDataAI:      {},
		CategoryTools:       {},
		CategorySoftSkills:  {},
	}

	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, c := range skillCategories {
			if containsSkill(c.skills, lower) {
				categories[c.name] = append(categories[c.name], skill)
				break
			}
		}
	}

	return categories
}

func containsSkill(skills []string, target string) bool {
	for _, s := range skills {
		if strings.ToLower(s) == target {
			return true
		}
	}
	return false
}
