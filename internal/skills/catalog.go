// Package skills provides the static skill catalog and regex-based skill
// extraction from résumé text.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// categoryTable maps each category to its catalog entries (normalized
// lowercase identifiers). Every entry belongs to exactly one category.
var categoryTable = map[string][]string{
	types.CategoryProgramming: {
		"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "php",
		"swift", "kotlin", "typescript", "r", "scala", "perl", "matlab", "dart", "lua",
	},
	types.CategoryWeb: {
		"html", "css", "react", "angular", "vue.js", "node.js", "express",
		"django", "flask", "spring", "asp.net", "jquery", "bootstrap",
		"webpack", "babel", "sass", "less", "redux", "graphql", "rest api",
		"next.js", "tailwind",
	},
	types.CategoryDatabases: {
		"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra",
		"oracle", "sqlite", "dynamodb", "elasticsearch", "neo4j", "mariadb",
	},
	types.CategoryCloud: {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
		"terraform", "ansible", "chef", "puppet", "ci/cd", "linux",
		"bash", "shell scripting", "nginx", "apache", "prometheus", "grafana", "helm",
	},
	types.CategoryDataML: {
		"machine learning", "deep learning", "nlp", "computer vision",
		"tensorflow", "pytorch", "keras", "scikit-learn", "pandas",
		"numpy", "matplotlib", "seaborn", "jupyter", "spark", "hadoop",
	},
	types.CategoryMobile: {
		"android", "ios", "react native", "flutter", "xamarin", "ionic",
		"swiftui", "jetpack compose",
	},
	types.CategorySecurity: {
		"penetration testing", "network security", "cryptography",
		"ethical hacking", "owasp", "burp suite", "wireshark", "nmap",
		"metasploit", "siem",
	},
	types.CategoryEmbedded: {
		"arduino", "raspberry pi", "embedded c", "rtos", "microcontrollers",
		"iot", "verilog", "vhdl", "fpga", "pcb design",
	},
	types.CategoryTools: {
		"git", "github", "jira", "agile", "scrum", "tableau", "power bi",
		"excel", "data visualization", "microservices", "restful",
		"api design", "system design", "algorithms", "data structures",
		"oop", "functional programming", "testing", "unit testing",
		"tdd", "debugging", "problem solving", "communication",
		"teamwork", "leadership", "project management",
	},
}

// displayOverrides maps entries with irregular capitalization (acronyms,
// multi-word technical terms) to their display form. Everything else
// defaults to title-case.
var displayOverrides = map[string]string{
	"c++":        "C++",
	"c#":         "C#",
	"php":        "PHP",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"matlab":     "MATLAB",
	"html":       "HTML",
	"css":        "CSS",
	"vue.js":     "Vue.js",
	"node.js":    "Node.js",
	"next.js":    "Next.js",
	"asp.net":    "ASP.NET",
	"jquery":     "jQuery",
	"graphql":    "GraphQL",
	"rest api":   "REST API",
	"sql":        "SQL",
	"mysql":      "MySQL",
	"postgresql": "PostgreSQL",
	"mongodb":    "MongoDB",
	"sqlite":     "SQLite",
	"dynamodb":   "DynamoDB",
	"neo4j":      "Neo4j",
	"mariadb":    "MariaDB",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ci/cd":      "CI/CD",
	"gitlab":     "GitLab",
	"nginx":      "NGINX",
	"nlp":        "NLP",
	"tensorflow": "TensorFlow",
	"pytorch":    "PyTorch",
	"scikit-learn": "scikit-learn",
	"numpy":      "NumPy",
	"ios":        "iOS",
	"swiftui":    "SwiftUI",
	"owasp":      "OWASP",
	"siem":       "SIEM",
	"rtos":       "RTOS",
	"iot":        "IoT",
	"vhdl":       "VHDL",
	"fpga":       "FPGA",
	"pcb design": "PCB Design",
	"github":     "GitHub",
	"power bi":   "Power BI",
	"restful":    "RESTful",
	"api design": "API Design",
	"oop":        "OOP",
	"tdd":        "TDD",
	"embedded c": "Embedded C",
}

// catalogIndex maps normalized name to its Skill record, built at init.
var catalogIndex = buildIndex()

func buildIndex() map[string]types.Skill {
	index := make(map[string]types.Skill)
	for category, entries := range categoryTable {
		for _, name := range entries {
			index[name] = types.Skill{
				Name:     name,
				Display:  DisplayName(name),
				Category: category,
			}
		}
	}
	return index
}

// Lookup returns the catalog record for a normalized lowercase name.
func Lookup(name string) (types.Skill, bool) {
	skill, ok := catalogIndex[name]
	return skill, ok
}

// All returns every catalog entry sorted by normalized name.
func All() []types.Skill {
	all := make([]types.Skill, 0, len(catalogIndex))
	for _, skill := range catalogIndex {
		all = append(all, skill)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// DisplayName returns the display form for a normalized name: the override
// table entry when present, title-case otherwise.
func DisplayName(name string) string {
	if display, ok := displayOverrides[name]; ok {
		return display
	}
	return titleCase(name)
}

// CategoryOf returns the category for a normalized name, or CategoryTools
// for names outside the catalog.
func CategoryOf(name string) string {
	if skill, ok := catalogIndex[name]; ok {
		return skill.Category
	}
	return types.CategoryTools
}

// Categorize buckets normalized skill names into category display lists.
// Pure function of its input: categorizing twice yields identical maps.
// Empty categories are omitted; each list is sorted by display name.
func Categorize(names []string) map[string][]string {
	categorized := make(map[string][]string)
	for _, name := range names {
		category := CategoryOf(name)
		categorized[category] = append(categorized[category], DisplayName(name))
	}
	for _, list := range categorized {
		sort.Strings(list)
	}
	return categorized
}

// titleCase capitalizes the first letter of each space-separated word and
// lowercases the rest, like "machine learning" -> "Machine Learning".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
