// Package outcome validates SMART outcome statements, indicator targets and
// practice changes.
package outcome

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/logframe/pkg/domain"
)

const (
	smartMaxScore     = 5
	smartValidScore   = 3
	smartMinWords     = 8
	aggressiveMonthly = 10.0
)

var (
	measurableWords    = []string{"percentage", "score", "proficiency", "fluency"}
	vaguePracticeWords = []string{"better", "improved", "enhanced", "effective"}
)

// ValidateSMART scores an outcome statement with its baseline, target and timeline.
// Valid is decided on the unclamped score.
func ValidateSMART(statement string, baseline, target float64, months int) domain.SMARTResult {
	score := smartMaxScore
	issues := []string{}

	if len(strings.Fields(statement)) < smartMinWords {
		issues = append(issues, "Outcome may not be sufficiently specific.")
		score--
	}
	if baseline >= target {
		issues = append(issues, "Target value must be greater than baseline.")
		score--
	}
	if months <= 0 {
		issues = append(issues, "Timeline must be greater than zero months.")
		score--
	}
	if !containsAny(strings.ToLower(statement), measurableWords) {
		issues = append(issues, "Outcome may not be clearly measurable.")
		score--
	}

	return domain.SMARTResult{
		Score:  max(score, 1),
		Issues: issues,
		Valid:  score >= smartValidScore,
	}
}

// MonthsBetween counts calendar months from start to end, ignoring days.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// ValidateTarget checks growth direction, period and pace of one indicator target.
func ValidateTarget(t domain.IndicatorTarget) domain.TargetResult {
	warnings := []string{}

	if t.Target <= t.Baseline {
		warnings = append(warnings, "Target value must be greater than baseline")
	}

	months := MonthsBetween(t.StartDate, t.EndDate)
	if months <= 0 {
		warnings = append(warnings, "End date must be after start date")
	} else if (t.Target-t.Baseline)/float64(months) > aggressiveMonthly {
		warnings = append(warnings, "Target growth appears aggressive for the given timeline")
	}

	status := domain.TargetValid
	if len(warnings) > 0 {
		status = domain.TargetNeedsReview
	}
	return domain.TargetResult{IndicatorName: t.IndicatorName, Status: status, Warnings: warnings}
}

// ValidateTargets runs ValidateTarget over targets, preserving order.
func ValidateTargets(targets []domain.IndicatorTarget) []domain.TargetResult {
	results := make([]domain.TargetResult, len(targets))
	for i, t := range targets {
		results[i] = ValidateTarget(t)
	}
	return results
}

// ValidatePractices compares current and desired practices of one stakeholder.
func ValidatePractices(current, desired []string) []string {
	feedback := []string{}

	if len(current) == 0 {
		feedback = append(feedback, "Current practices cannot be empty.")
	}
	if len(desired) == 0 {
		feedback = append(feedback, "Desired practices cannot be empty.")
	}
	if len(desired) < len(current) {
		feedback = append(feedback, "Desired practices should demonstrate improvement beyond current practices.")
	}
	for _, p := range desired {
		if containsAny(strings.ToLower(p), vaguePracticeWords) {
			feedback = append(feedback, fmt.Sprintf("Desired practice '%s' may be too vague. Consider making it more specific.", p))
		}
	}
	return feedback
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
