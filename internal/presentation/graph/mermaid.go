package graph

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

// Image formats served by mermaid.ink.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Diagram bundles mermaid source with its preview links.
type Diagram struct {
	Source     string `json:"mermaid_diagram"`
	PreviewURL string `json:"mermaid_preview_url"`
	PNGURL     string `json:"mermaid_png_url"`
	SVGURL     string `json:"mermaid_svg_url"`
}

// NewDiagram computes the links for source.
func NewDiagram(source string) Diagram {
	return Diagram{
		Source:     source,
		PreviewURL: LiveURL(source),
		PNGURL:     ImageURL(source, FormatPNG),
		SVGURL:     ImageURL(source, FormatSVG),
	}
}

// ProblemTree renders causes -> core problem -> effects, left to right.
func ProblemTree(tree domain.ProblemTree) string {
	lines := []string{"graph LR"}
	core := sanitizeMermaidID(tree.CoreProblem.ID)

	for _, c := range tree.Causes {
		lines = append(lines, fmt.Sprintf(`%s["%s"] --> %s`, sanitizeMermaidID(c.ID), sanitizeLabel(c.Label), core))
	}
	lines = append(lines, fmt.Sprintf(`%s["%s"]`, core, sanitizeLabel(tree.CoreProblem.Label)))
	for _, e := range tree.Effects {
		lines = append(lines, fmt.Sprintf(`%s --> %s["%s"]`, core, sanitizeMermaidID(e.ID), sanitizeLabel(e.Label)))
	}
	return strings.Join(lines, "\n")
}

// TheoryOfChange renders a change pathway with one shape per kind:
// - activity: [Rectangle]
// - output: (Rounded)
// - outcome: ((Circle))
// - impact: (((Double circle)))
// Unknown kinds fall back to a rectangle.
func TheoryOfChange(nodes []domain.Node, edges []domain.Edge) string {
	lines := []string{"flowchart LR"}

	for _, n := range nodes {
		opener, closer := "[", "]"
		switch n.Kind {
		case domain.KindOutput:
			opener, closer = "(", ")"
		case domain.KindOutcome:
			opener, closer = "((", "))"
		case domain.KindImpact:
			opener, closer = "(((", ")))"
		}
		lines = append(lines, fmt.Sprintf(`%s%s"%s"%s`, sanitizeMermaidID(n.ID), opener, sanitizeLabel(n.Label), closer))
	}
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("%s --> %s", sanitizeMermaidID(e.Source), sanitizeMermaidID(e.Target)))
	}
	return strings.Join(lines, "\n")
}

// OutcomeTimeline is a one-bar gantt from baseline to target.
// Months are drawn as 30 days from a fixed start date.
func OutcomeTimeline(outcome string, months int) string {
	title := sanitizeLabel(outcome)
	if title == "" {
		title = "Student Outcome Timeline"
	}
	return fmt.Sprintf(`gantt
    title %s
    dateFormat  YYYY-MM-DD
    section Outcome Achievement
    Baseline to Target Progress :a1, 2025-01-01, %dd
`, title, months*30)
}

// LiveURL returns a mermaid.live editor link for source.
func LiveURL(source string) string {
	payload, _ := json.Marshal(map[string]any{
		"code":    source,
		"mermaid": map[string]string{"theme": "default"},
	})
	return "https://mermaid.live/edit#" + base64.URLEncoding.EncodeToString(payload)
}

// ImageURL returns a mermaid.ink image link for source in format.
func ImageURL(source, format string) string {
	return fmt.Sprintf("https://mermaid.ink/img/%s?type=%s", base64.URLEncoding.EncodeToString([]byte(source)), format)
}

func sanitizeLabel(label string) string {
	r := strings.NewReplacer(`"`, "'", "[", "", "]", "", "\n", " ")
	return r.Replace(label)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
