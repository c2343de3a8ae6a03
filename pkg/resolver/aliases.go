package resolver

import (
	"sort"
	"strings"
)

// departmentAliases maps lowercased aliases and shorthand to canonical
// department names. Loaded once at process start and never mutated.
var departmentAliases = map[string]string{
	"eng":               "Engineering",
	"engineering":       "Engineering",
	"dev":               "Engineering",
	"development":       "Engineering",
	"hr":                "Human Resources",
	"human resources":   "Human Resources",
	"people ops":        "Human Resources",
	"people operations": "Human Resources",
	"sales":             "Sales",
	"marketing":         "Marketing",
	"mktg":              "Marketing",
	"finance":           "Finance",
	"accounting":        "Finance",
	"product":           "Product",
	"design":            "Design",
	"ux":                "Design",
	"operations":        "Operations",
	"ops":               "Operations",
	"it":                "IT",
	"legal":             "Legal",
	"support":           "Support",
	"customer support":  "Support",
	"customer success":  "Support",
	"data":              "Data",
	"data science":      "Data",
	"analytics":         "Data",
	"research":          "Research",
	"qa":                "QA",
	"quality assurance": "QA",
	"security":          "Security",
}

// skillSynonyms maps lowercased skill mentions to canonical skill names.
var skillSynonyms = map[string]string{
	"go":                 "Go",
	"golang":             "Go",
	"python":             "Python",
	"java":               "Java",
	"rust":               "Rust",
	"js":                 "JavaScript",
	"javascript":         "JavaScript",
	"ts":                 "TypeScript",
	"typescript":         "TypeScript",
	"react":              "React",
	"node":               "Node.js",
	"nodejs":             "Node.js",
	"sql":                "SQL",
	"postgres":           "PostgreSQL",
	"postgresql":         "PostgreSQL",
	"redis":              "Redis",
	"docker":             "Docker",
	"k8s":                "Kubernetes",
	"kubernetes":         "Kubernetes",
	"aws":                "AWS",
	"gcp":                "GCP",
	"terraform":          "Terraform",
	"devops":             "DevOps",
	"ml":                 "Machine Learning",
	"machine learning":   "Machine Learning",
	"ai":                 "AI",
	"nlp":                "NLP",
	"data analysis":      "Data Analysis",
	"data engineering":   "Data Engineering",
	"security":           "Security",
	"frontend":           "Frontend",
	"backend":            "Backend",
	"mobile":             "Mobile",
	"leadership":         "Leadership",
	"mentoring":          "Mentoring",
	"project management": "Project Management",
	"communication":      "Communication",
	"recruiting":         "Recruiting",
	"copywriting":        "Copywriting",
	"seo":                "SEO",
}

// CanonicalDepartment normalizes a department mention through the alias
// table. It reports false when the mention is not in the controlled
// vocabulary.
func CanonicalDepartment(name string) (string, bool) {
	canonical, ok := departmentAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// CanonicalSkill normalizes a skill mention through the synonym table. It
// reports false when the mention is unknown.
func CanonicalSkill(name string) (string, bool) {
	canonical, ok := skillSynonyms[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// DepartmentVocabulary returns every known department alias, longest first
// so multi-word aliases are matched before their single-word fragments.
func DepartmentVocabulary() []string {
	return sortedKeys(departmentAliases)
}

// SkillVocabulary returns every known skill mention, longest first.
func SkillVocabulary() []string {
	return sortedKeys(skillSynonyms)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
