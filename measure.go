package logframe

import (
	"context"

	"github.com/aretw0/logframe/internal/advisor"
	"github.com/aretw0/logframe/internal/indicators"
	"github.com/aretw0/logframe/internal/outcome"
	"github.com/aretw0/logframe/internal/refine"
	"github.com/aretw0/logframe/internal/stakeholder"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/translate"
)

// RefineProblem scores the clarity of a raw problem statement and proposes
// a rewrite with likely root causes.
func (e *Engine) RefineProblem(ctx context.Context, orgID, statement string) (*domain.Refinement, error) {
	ev := e.begin(ctx, domain.OpRefineProblem, orgID, "")
	r := refine.Refine(statement)
	score := float64(r.ClarityScore)
	ev.done(r, len(r.Issues), &score)
	return &r, nil
}

// OutcomeRequest is a student outcome with its baseline, target and timeline.
type OutcomeRequest struct {
	OrganizationID string  `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme          string  `json:"theme,omitempty" yaml:"theme"`
	GradeRange     string  `json:"grade_range,omitempty" yaml:"grade_range"`
	Statement      string  `json:"outcome_statement" yaml:"outcome_statement"`
	Baseline       float64 `json:"baseline_value" yaml:"baseline_value"`
	Target         float64 `json:"target_value" yaml:"target_value"`
	TimelineMonths int     `json:"timeline_months" yaml:"timeline_months"`
}

// OutcomeReport is a SMART verdict with the competencies and policies the
// outcome aligns to.
type OutcomeReport struct {
	SMART            domain.SMARTResult `json:"smart_validation"`
	Competencies     []string           `json:"aligned_competencies"`
	PolicyReferences []string           `json:"policy_references"`
}

// ValidateOutcome scores the outcome against the SMART heuristics. The
// competencies of the theme and grade range are attached when both are given.
func (e *Engine) ValidateOutcome(ctx context.Context, req OutcomeRequest) (*OutcomeReport, error) {
	ev := e.begin(ctx, domain.OpValidateOutcome, req.OrganizationID, req.Theme)
	report := &OutcomeReport{
		SMART:            outcome.ValidateSMART(req.Statement, req.Baseline, req.Target, req.TimelineMonths),
		Competencies:     []string{},
		PolicyReferences: ev.policyReferences(),
	}
	if req.Theme != "" && req.GradeRange != "" {
		report.Competencies = ev.competencies(req.Theme, req.GradeRange)
	}
	score := float64(report.SMART.Score)
	ev.done(report, len(report.SMART.Issues), &score)
	return report, nil
}

// ValidateTargets checks each baseline/target pair, preserving order.
func (e *Engine) ValidateTargets(ctx context.Context, orgID string, targets []domain.IndicatorTarget) ([]domain.TargetResult, error) {
	ev := e.begin(ctx, domain.OpValidateTargets, orgID, "")
	results := outcome.ValidateTargets(targets)
	findings := 0
	for _, r := range results {
		findings += len(r.Warnings)
	}
	ev.done(results, findings, nil)
	return results, nil
}

// PracticeRequest is the practice change of one stakeholder.
type PracticeRequest struct {
	OrganizationID        string `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme                 string `json:"theme,omitempty" yaml:"theme"`
	domain.PracticeChange `yaml:",inline"`
}

// PracticeReport is the feedback on a practice change with the practices
// the stakeholder's template suggests.
type PracticeReport struct {
	Suggestions domain.PracticeSuggestions `json:"suggestions"`
	Feedback    []string                   `json:"validation_feedback"`
}

// ValidatePractices checks the desired practices improve on the current ones
// and suggests typical practices when the theme is known.
func (e *Engine) ValidatePractices(ctx context.Context, req PracticeRequest) (*PracticeReport, error) {
	ev := e.begin(ctx, domain.OpValidatePractices, req.OrganizationID, req.Theme)
	var tpl *domain.PracticeTemplate
	if req.Theme != "" && req.StakeholderID != "" {
		tpl = ev.practiceTemplate(req.StakeholderID, req.Theme)
	}
	report := &PracticeReport{
		Suggestions: stakeholder.Suggest(tpl),
		Feedback:    outcome.ValidatePractices(req.CurrentPractices, req.DesiredPractices),
	}
	ev.done(report, len(report.Feedback), nil)
	return report, nil
}

// IndicatorRequest lists the outcomes and practice changes to measure.
type IndicatorRequest struct {
	OrganizationID  string                  `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme           string                  `json:"theme" yaml:"theme"`
	Outcomes        []string                `json:"student_outcomes" yaml:"student_outcomes"`
	PracticeChanges []domain.PracticeChange `json:"practice_changes" yaml:"practice_changes"`
}

// SuggestIndicators maps each outcome and desired practice to an indicator
// from the theme's templates, or to a generic fallback.
func (e *Engine) SuggestIndicators(ctx context.Context, req IndicatorRequest) (*domain.IndicatorSet, error) {
	ev := e.begin(ctx, domain.OpSuggestIndicators, req.OrganizationID, req.Theme)

	set := &domain.IndicatorSet{
		OutcomeIndicators: indicators.ForOutcomes(req.Outcomes, ev.indicatorTemplates(domain.IndicatorKey{
			Scope: domain.ScopeStudentOutcome,
			Theme: req.Theme,
		})),
		PracticeIndicators: make([]domain.PracticeIndicators, 0, len(req.PracticeChanges)),
	}
	for _, pc := range req.PracticeChanges {
		templates := ev.indicatorTemplates(domain.IndicatorKey{
			Scope:         domain.ScopePracticeChange,
			Theme:         req.Theme,
			StakeholderID: pc.StakeholderID,
		})
		set.PracticeIndicators = append(set.PracticeIndicators, indicators.ForPractices(pc.StakeholderID, pc.DesiredPractices, templates))
	}

	ev.done(set, 0, nil)
	return set, nil
}

// AnalyzeContext recommends an LFA template, delivery patterns and the known
// challenges of the organization's state.
func (e *Engine) AnalyzeContext(ctx context.Context, orgID string, profile domain.OrganizationProfile) (*domain.ContextAnalysis, error) {
	ev := e.begin(ctx, domain.OpAnalyzeContext, orgID, "")
	var challenges []domain.Challenge
	if profile.Geography.State != "" {
		challenges = ev.stateChallenges(profile.Geography.State)
	}
	analysis := advisor.Analyze(profile, challenges)
	ev.done(analysis, len(analysis.Challenges), nil)
	return &analysis, nil
}

// Localize returns the JSON shape of v with every string translated into
// lang. Without a translator, or for English, v is returned as is.
func (e *Engine) Localize(ctx context.Context, lang string, v any) (any, error) {
	if e.translator == nil || translate.IsIdentity(lang) {
		return v, nil
	}
	return translate.Value(ctx, e.translator, lang, v)
}
