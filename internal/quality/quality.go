// Package quality runs the heuristic design checks over a snapshot and
// aggregates them into a penalty score.
package quality

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe/internal/dto"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/rubric"
)

// Analyzer runs the checks of a rule table.
type Analyzer struct {
	rules rubric.QualityRules
}

// New creates an Analyzer over rules.
func New(rules rubric.QualityRules) *Analyzer {
	return &Analyzer{rules: rules}
}

// Analyze runs every check in fixed order and scores the concatenated items.
func (a *Analyzer) Analyze(snapshot domain.Snapshot) domain.QualityReport {
	d := dto.DecodeDesign(snapshot)

	items := []domain.FeedbackItem{}
	items = append(items, a.OutcomeQuality(d.Outcomes)...)
	items = append(items, a.StakeholderAlignment(d.Stakeholders, d.Outcomes)...)
	items = append(items, a.IndicatorValidity(d.Indicators)...)
	items = append(items, a.TheoryOfChangeLogic(d.TheoryOfChange)...)
	items = append(items, a.InterventionAlignment(d.CoreProblem, d.Interventions)...)

	return domain.QualityReport{
		QualityScore:  a.rules.Score(len(items)),
		FeedbackItems: items,
	}
}

func (a *Analyzer) item(check, issue string) domain.FeedbackItem {
	rule := a.rules.Rule(check)
	return domain.FeedbackItem{
		Check:      check,
		Severity:   rule.Severity,
		Area:       rule.Area,
		Issue:      issue,
		Suggestion: rule.Suggestion,
	}
}

// OutcomeQuality flags outcomes lacking a measurability marker or carrying a
// vague one. Both problems of one outcome share a single item.
func (a *Analyzer) OutcomeQuality(outcomes []string) []domain.FeedbackItem {
	var items []domain.FeedbackItem
	for _, outcome := range outcomes {
		lower := strings.ToLower(outcome)
		var problems []string
		if !containsAny(lower, a.rules.MeasurableMarkers) {
			problems = append(problems, a.rules.Texts.NotMeasurable)
		}
		if containsAny(lower, a.rules.VagueMarkers) {
			problems = append(problems, a.rules.Texts.VagueLanguage)
		}
		if len(problems) == 0 {
			continue
		}
		it := a.item(rubric.CheckOutcomeQuality, outcome)
		it.Problems = problems
		items = append(items, it)
	}
	return items
}

// StakeholderAlignment emits one item for an empty stakeholder list and stops.
// Otherwise it flags fewer stakeholders than outcomes.
func (a *Analyzer) StakeholderAlignment(stakeholders []any, outcomes []string) []domain.FeedbackItem {
	if len(stakeholders) == 0 {
		return []domain.FeedbackItem{a.item(rubric.CheckStakeholderAlignment, a.rules.Texts.NoStakeholders)}
	}
	if len(stakeholders) < len(outcomes) {
		it := a.item(rubric.CheckStakeholderAlignment, a.rules.Texts.CoverageIssue)
		it.Area = a.rules.Texts.CoverageArea
		it.Suggestion = a.rules.Texts.CoverageHint
		return []domain.FeedbackItem{it}
	}
	return nil
}

// IndicatorValidity cautions against perception-based indicators.
func (a *Analyzer) IndicatorValidity(indicators []string) []domain.FeedbackItem {
	var items []domain.FeedbackItem
	for _, ind := range indicators {
		if containsAny(strings.ToLower(ind), a.rules.PerceptionMarkers) {
			it := a.item(rubric.CheckIndicatorValidity, ind)
			it.Problem = a.rules.Texts.PerceptionBased
			items = append(items, it)
		}
	}
	return items
}

// TheoryOfChangeLogic flags each missing or empty chain key and an
// activity count exceeding ActivityRatio times the outcome count.
func (a *Analyzer) TheoryOfChangeLogic(toc map[string]any) []domain.FeedbackItem {
	var items []domain.FeedbackItem
	for _, step := range a.rules.ChangeChain {
		if dto.IsEmpty(toc[step]) {
			it := a.item(rubric.CheckTheoryOfChangeLogic, fmt.Sprintf(a.rules.Texts.MissingStep, step))
			it.Suggestion = fmt.Sprintf(a.rules.Texts.MissingStepHint, step)
			items = append(items, it)
		}
	}

	activities, hasActivities := toc["activities"]
	outcomes, hasOutcomes := toc["outcomes"]
	if hasActivities && hasOutcomes && dto.Length(activities) > dto.Length(outcomes)*a.rules.ActivityRatio {
		it := a.item(rubric.CheckTheoryOfChangeLogic, a.rules.Texts.TooManyActivities)
		it.Suggestion = a.rules.Texts.TooManyActivitiesFix
		items = append(items, it)
	}
	return items
}

// InterventionAlignment runs only when both inputs are non-empty. An
// infrastructure problem needs at least one infrastructure intervention.
func (a *Analyzer) InterventionAlignment(problem string, interventions []string) []domain.FeedbackItem {
	if problem == "" || len(interventions) == 0 {
		return nil
	}
	if !containsAny(strings.ToLower(problem), a.rules.InfrastructureTerms) {
		return nil
	}
	for _, in := range interventions {
		if strings.Contains(strings.ToLower(in), a.rules.InterventionMarker) {
			return nil
		}
	}
	return []domain.FeedbackItem{a.item(rubric.CheckInterventionAlignment, a.rules.Texts.Mismatch)}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
