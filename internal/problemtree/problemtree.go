// Package problemtree assembles causes -> core problem -> effects trees and
// cross-checks problem statements against ecosystem patterns.
package problemtree

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

// Warnings emitted by CrossCheck.
const (
	DeviationWarning = "Your problem statement deviates from common ecosystem patterns. Ensure this is intentional."
	BrevityWarning   = "Problem statement may be too short for systemic clarity."
)

// MinStatementTokens is the brevity threshold of a problem statement.
const MinStatementTokens = 10

// Build maps root causes and the optional pattern's common effects to
// positional nodes. The systemic effect is always the last effect.
func Build(statement string, causes []domain.RootCause, pattern *domain.EcosystemPattern) domain.ProblemTree {
	tree := domain.ProblemTree{
		Causes:      make([]domain.TreeNode, 0, len(causes)),
		CoreProblem: domain.TreeNode{ID: domain.CoreProblemID, Label: statement},
	}

	for i, c := range causes {
		tree.Causes = append(tree.Causes, domain.TreeNode{ID: fmt.Sprintf("C%d", i+1), Label: c.Cause})
	}

	var labels []string
	if pattern != nil {
		labels = append(labels, pattern.CommonEffects...)
	}
	labels = append(labels, domain.SystemicEffectLabel)

	tree.Effects = make([]domain.TreeNode, len(labels))
	for i, label := range labels {
		tree.Effects[i] = domain.TreeNode{ID: fmt.Sprintf("E%d", i+1), Label: label}
	}

	return tree
}

// CrossCheck returns the deviation and brevity warnings for statement.
// The two checks are independent.
func CrossCheck(statement string, pattern *domain.EcosystemPattern) []string {
	warnings := []string{}

	if pattern != nil {
		if !strings.Contains(strings.ToLower(statement), strings.ToLower(pattern.CoreProblemPattern)) {
			warnings = append(warnings, DeviationWarning)
		}
	}

	if len(strings.Fields(statement)) < MinStatementTokens {
		warnings = append(warnings, BrevityWarning)
	}

	return warnings
}
