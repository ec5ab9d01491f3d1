// Package pathway checks change-pathway graphs for layer ordering and
// completeness, and compares them with reference patterns.
package pathway

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

// NoPatternSuggestion is the single suggestion emitted when a theme has no reference pattern.
const NoPatternSuggestion = "No reference ToC pattern found for this theme."

// Validate returns the ordered issues of a change-pathway graph.
// Edge violations come first in edge order, then missing layers in rank order.
func Validate(g *domain.Graph) []string {
	issues := []string{}

	for _, e := range g.Edges() {
		src, _ := g.Node(e.Source)
		tgt, _ := g.Node(e.Target)
		if !advancesOneRank(src.Kind, tgt.Kind) {
			issues = append(issues, fmt.Sprintf(
				"Invalid logical jump from %s to %s: '%s' → '%s'",
				src.Kind, tgt.Kind, src.Label, tgt.Label,
			))
		}
	}

	present := g.KindsPresent()
	for _, k := range domain.PathwayKinds {
		if !present[k] {
			issues = append(issues, fmt.Sprintf("Missing '%s' level in Theory of Change.", k))
		}
	}

	return issues
}

// IsValid reports whether an issue list describes a valid pathway.
func IsValid(issues []string) bool {
	return len(issues) == 0
}

// advancesOneRank is false whenever either endpoint sits outside the chain.
func advancesOneRank(from, to domain.Kind) bool {
	fr, ok := from.Rank()
	if !ok {
		return false
	}
	tr, ok := to.Rank()
	if !ok {
		return false
	}
	return tr-fr == 1
}

// DetectGaps lists the expected outputs and outcomes of pattern that no node
// label matches, case-insensitively. A nil pattern yields NoPatternSuggestion.
func DetectGaps(g *domain.Graph, pattern *domain.PathwayPattern) []string {
	if pattern == nil {
		return []string{NoPatternSuggestion}
	}

	labels := make(map[string]bool)
	for _, l := range g.Labels() {
		labels[strings.ToLower(l)] = true
	}

	suggestions := []string{}
	for _, out := range pattern.Outputs {
		if !labels[strings.ToLower(out)] {
			suggestions = append(suggestions, fmt.Sprintf(
				"Consider adding output: '%s' (commonly seen in successful programs).", out))
		}
	}
	for _, oc := range pattern.Outcomes {
		if !labels[strings.ToLower(oc)] {
			suggestions = append(suggestions, fmt.Sprintf("Missing typical outcome: '%s'.", oc))
		}
	}
	return suggestions
}
