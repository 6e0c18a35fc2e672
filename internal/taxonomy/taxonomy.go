// Package taxonomy holds the fixed skill catalog shared by the scoring engine
// and the resume structurer, plus the static adjacency graph used for
// complementary-skill suggestions. All data is immutable after package init
// and safe for concurrent reads.
package taxonomy

import "strings"

// Catalog is the ordered list of canonical skill names. Skill extraction
// reports matches in this order, so the ordering is part of the contract.
var Catalog = []string{
	// Frontend
	"React", "Vue.js", "Angular", "TypeScript", "JavaScript", "HTML/CSS",
	"Next.js", "Tailwind CSS", "Redux", "Svelte",
	// Backend
	"Node.js", "Python", "Java", "Go", "Ruby", "PHP", "C#", ".NET", "Rust", "Elixir",
	// Data & AI
	"Machine Learning", "TensorFlow", "PyTorch", "Data Analysis", "SQL", "Pandas",
	"NLP", "Computer Vision", "Deep Learning", "MLOps",
	// Cloud & DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "CI/CD",
	"Linux", "Nginx", "Jenkins",
	// Design
	"Figma", "UX Research", "UI Design", "Design Systems", "Prototyping",
	"Adobe XD", "Sketch", "Accessibility", "Motion Design", "Branding",
	// Management
	"Agile/Scrum", "Product Strategy", "Stakeholder Mgmt", "Roadmapping",
	"Team Leadership", "Budgeting", "OKRs", "Hiring", "Mentoring", "Cross-functional",
	// Common extras
	"GraphQL", "MongoDB", "Redis", "PostgreSQL", "Express", "Django", "FastAPI",
	"Flask", "Spring", "Kafka", "Git", "GitHub", "Jira", "NumPy",
	"Elasticsearch", "RabbitMQ",
}

// lowerToCanonical maps the lowercase form of each catalog entry to its
// canonical spelling.
var lowerToCanonical = func() map[string]string {
	m := make(map[string]string, len(Catalog))
	for _, s := range Catalog {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// Canonical returns the catalog spelling for a skill name, matched
// case-insensitively. The second return value reports whether the skill is in
// the catalog at all.
func Canonical(skill string) (string, bool) {
	c, ok := lowerToCanonical[strings.ToLower(skill)]
	return c, ok
}

// Contains reports whether the skill is in the catalog, case-insensitively.
func Contains(skill string) bool {
	_, ok := lowerToCanonical[strings.ToLower(skill)]
	return ok
}
