package rubric

import (
	"fmt"

	"github.com/aretw0/logframe/pkg/domain"
)

// Check names, in the order the analyzer runs them.
const (
	CheckOutcomeQuality        = "outcome_quality"
	CheckStakeholderAlignment  = "stakeholder_alignment"
	CheckIndicatorValidity     = "indicator_validity"
	CheckTheoryOfChangeLogic   = "theory_of_change_logic"
	CheckInterventionAlignment = "problem_intervention_alignment"
)

// CheckOrder is the fixed emission order of the quality checks.
var CheckOrder = []string{
	CheckOutcomeQuality,
	CheckStakeholderAlignment,
	CheckIndicatorValidity,
	CheckTheoryOfChangeLogic,
	CheckInterventionAlignment,
}

// CheckRule is the presentation data attached to every item of one check.
type CheckRule struct {
	Severity   domain.Severity `yaml:"severity" json:"severity"`
	Area       string          `yaml:"area" json:"area"`
	Suggestion string          `yaml:"suggestion" json:"suggestion"`
}

// QualityRules holds the vocabularies and penalty used by the quality analyzer.
type QualityRules struct {
	Penalty int `yaml:"penalty" json:"penalty"`

	MeasurableMarkers   []string `yaml:"measurable_markers" json:"measurable_markers"`
	VagueMarkers        []string `yaml:"vague_markers" json:"vague_markers"`
	PerceptionMarkers   []string `yaml:"perception_markers" json:"perception_markers"`
	InfrastructureTerms []string `yaml:"infrastructure_terms" json:"infrastructure_terms"`
	// InterventionMarker must appear in at least one intervention when the
	// problem names an infrastructure term.
	InterventionMarker string `yaml:"intervention_marker" json:"intervention_marker"`

	// ActivityRatio bounds activities per outcome before the chain is flagged.
	ActivityRatio int      `yaml:"activity_ratio" json:"activity_ratio"`
	ChangeChain   []string `yaml:"change_chain" json:"change_chain"`

	Checks map[string]CheckRule `yaml:"checks" json:"checks"`
	// Item texts that are not per-item data.
	Texts QualityTexts `yaml:"texts" json:"texts"`
}

// QualityTexts are the fixed issue and problem strings of the analyzer.
type QualityTexts struct {
	NotMeasurable        string `yaml:"not_measurable"`
	VagueLanguage        string `yaml:"vague_language"`
	PerceptionBased      string `yaml:"perception_based"`
	NoStakeholders       string `yaml:"no_stakeholders"`
	CoverageArea         string `yaml:"coverage_area"`
	CoverageIssue        string `yaml:"coverage_issue"`
	CoverageHint         string `yaml:"coverage_hint"`
	MissingStep          string `yaml:"missing_step"`      // format, %s = chain key
	MissingStepHint      string `yaml:"missing_step_hint"` // format, %s = chain key
	TooManyActivities    string `yaml:"too_many_activities"`
	TooManyActivitiesFix string `yaml:"too_many_activities_fix"`
	Mismatch             string `yaml:"mismatch"`
}

// DefaultQualityRules returns a fresh copy of the built-in rule table.
func DefaultQualityRules() QualityRules {
	return QualityRules{
		Penalty:             8,
		MeasurableMarkers:   []string{"increase", "decrease", "%", "to", "by", "from"},
		VagueMarkers:        []string{"improve", "enhance", "strengthen", "better"},
		PerceptionMarkers:   []string{"survey", "perception"},
		InfrastructureTerms: []string{"infrastructure", "hardware"},
		InterventionMarker:  "infrastructure",
		ActivityRatio:       3,
		ChangeChain:         []string{"activities", "outputs", "outcomes", "impact"},
		Checks: map[string]CheckRule{
			CheckOutcomeQuality: {
				Severity:   domain.SeverityHigh,
				Area:       "Student Outcomes",
				Suggestion: "Rewrite outcome using a measurable baseline, target, and timeframe",
			},
			CheckStakeholderAlignment: {
				Severity:   domain.SeverityHigh,
				Area:       "Stakeholders",
				Suggestion: "Map at least one stakeholder responsible for each outcome",
			},
			CheckIndicatorValidity: {
				Severity:   domain.SeverityMedium,
				Area:       "Indicators",
				Suggestion: "Prefer observable or performance-based indicators",
			},
			CheckTheoryOfChangeLogic: {
				Severity: domain.SeverityHigh,
				Area:     "Theory of Change",
			},
			CheckInterventionAlignment: {
				Severity:   domain.SeverityMedium,
				Area:       "Intervention Alignment",
				Suggestion: "Selected interventions do not address the stated core problem",
			},
		},
		Texts: QualityTexts{
			NotMeasurable:        "Outcome is not clearly measurable",
			VagueLanguage:        "Outcome uses vague language",
			PerceptionBased:      "Indicator is perception-based",
			NoStakeholders:       "No stakeholders linked to outcomes",
			CoverageArea:         "Stakeholder Coverage",
			CoverageIssue:        "Fewer stakeholders than outcomes",
			CoverageHint:         "Ensure accountability by mapping stakeholders to each outcome",
			MissingStep:          "Missing %s",
			MissingStepHint:      "Define clear %s to maintain logical flow",
			TooManyActivities:    "Too many activities for defined outcomes",
			TooManyActivitiesFix: "Reduce activities or clarify outcome pathways",
			Mismatch:             "Problem–intervention mismatch",
		},
	}
}

// Rule returns the rule for a check, or a zero rule when none is defined.
func (q QualityRules) Rule(check string) CheckRule {
	return q.Checks[check]
}

// Score applies the linear penalty to an item count, floored at 0.
func (q QualityRules) Score(items int) int {
	score := 100 - q.Penalty*items
	if score < 0 {
		return 0
	}
	return score
}

// Validate checks the table can drive every check.
// Only the theory-of-change rule may omit its suggestion; its items build one per step.
func (q QualityRules) Validate() error {
	var errs []error
	if q.Penalty <= 0 {
		errs = append(errs, &ValidationError{Reason: "quality penalty must be positive"})
	}
	if q.ActivityRatio <= 0 {
		errs = append(errs, &ValidationError{Reason: "activity ratio must be positive"})
	}
	if len(q.ChangeChain) == 0 {
		errs = append(errs, &ValidationError{Reason: "change chain is empty"})
	}
	for _, check := range CheckOrder {
		rule, ok := q.Checks[check]
		switch {
		case !ok:
			errs = append(errs, &ValidationError{Reason: fmt.Sprintf("quality check %q has no rule", check)})
		case rule.Area == "" || rule.Severity == "":
			errs = append(errs, &ValidationError{Reason: fmt.Sprintf("quality check %q needs an area and a severity", check)})
		case rule.Suggestion == "" && check != CheckTheoryOfChangeLogic:
			errs = append(errs, &ValidationError{Reason: fmt.Sprintf("quality check %q needs a suggestion", check)})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
