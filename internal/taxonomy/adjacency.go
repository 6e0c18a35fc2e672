package taxonomy

import "strings"

// maxSuggestions caps how many complementary skills Suggest returns.
const maxSuggestions = 8

// adjacencyEntry relates one lowercase skill key to its complementary skills
// in canonical catalog spelling.
type adjacencyEntry struct {
	skill   string
	related []string
}

// skillAdjacency is the static complementary-skill graph. Entry order matters:
// suggestions are emitted in graph definition order, not by match frequency.
var skillAdjacency = []adjacencyEntry{
	{"react", []string{"TypeScript", "Next.js", "Redux", "Tailwind CSS", "GraphQL"}},
	{"python", []string{"FastAPI", "Django", "Pandas", "NumPy", "Docker"}},
	{"typescript", []string{"React", "Node.js", "Next.js", "GraphQL", "Jest"}},
	{"aws", []string{"Docker", "Kubernetes", "Terraform", "CI/CD", "Linux"}},
	{"figma", []string{"Prototyping", "Design Systems", "UX Research", "Accessibility"}},
	{"machine learning", []string{"Python", "PyTorch", "TensorFlow", "MLOps", "Deep Learning"}},
	{"node.js", []string{"TypeScript", "Express", "PostgreSQL", "Docker", "GraphQL"}},
}

// Suggest proposes complementary skills for the given skill set. Skills the
// candidate already has are excluded (case-insensitively), as are duplicates
// reachable from several inputs. Inputs absent from the graph contribute
// nothing; an all-unknown input yields an empty slice.
func Suggest(existingSkills []string) []string {
	existing := make(map[string]struct{}, len(existingSkills))
	for _, s := range existingSkills {
		existing[strings.ToLower(s)] = struct{}{}
	}

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{})
	for _, entry := range skillAdjacency {
		if _, ok := existing[entry.skill]; !ok {
			continue
		}
		for _, related := range entry.related {
			key := strings.ToLower(related)
			if _, have := existing[key]; have {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			suggestions = append(suggestions, related)
			if len(suggestions) == maxSuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}
