package domain

import "time"

// SMARTResult scores an outcome statement against the SMART heuristics.
type SMARTResult struct {
	Score  int      `json:"smart_score"` // 1..5
	Issues []string `json:"issues"`
	Valid  bool     `json:"is_valid"`
}

// IndicatorTarget is a baseline/target pair for one indicator over a period.
type IndicatorTarget struct {
	IndicatorName string    `json:"indicator_name" yaml:"indicator_name" mapstructure:"indicator_name"`
	Baseline      float64   `json:"baseline_value" yaml:"baseline_value" mapstructure:"baseline_value"`
	Target        float64   `json:"target_value" yaml:"target_value" mapstructure:"target_value"`
	StartDate     time.Time `json:"start_date" yaml:"start_date" mapstructure:"start_date"`
	EndDate       time.Time `json:"end_date" yaml:"end_date" mapstructure:"end_date"`
}

// Target validation statuses.
const (
	TargetValid       = "valid"
	TargetNeedsReview = "needs_review"
)

// TargetResult is the validation verdict of one IndicatorTarget.
type TargetResult struct {
	IndicatorName string   `json:"indicator_name"`
	Status        string   `json:"status"`
	Warnings      []string `json:"warnings"`
}

// PracticeChange pairs a stakeholder with the practices they should adopt.
type PracticeChange struct {
	StakeholderID    string   `json:"stakeholder_id" yaml:"stakeholder_id" mapstructure:"stakeholder_id"`
	CurrentPractices []string `json:"current_practices,omitempty" yaml:"current_practices,omitempty" mapstructure:"current_practices"`
	DesiredPractices []string `json:"desired_practices" yaml:"desired_practices" mapstructure:"desired_practices"`
}

// IndicatorSuggestion maps one outcome or practice to an indicator.
type IndicatorSuggestion struct {
	Subject   string `json:"subject"`
	Indicator string `json:"indicator"`
}

// PracticeIndicators groups the suggestions for one stakeholder.
type PracticeIndicators struct {
	StakeholderID string                `json:"stakeholder_id"`
	Indicators    []IndicatorSuggestion `json:"indicators"`
}

// IndicatorSet is the output of indicator suggestion.
type IndicatorSet struct {
	OutcomeIndicators  []IndicatorSuggestion `json:"outcome_indicators"`
	PracticeIndicators []PracticeIndicators  `json:"practice_indicators"`
}
