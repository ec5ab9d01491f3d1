package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluation   EventType = "evaluation"
	EventLookupFailed EventType = "lookup_failed"
	EventRecordFailed EventType = "record_failed"
)

// Operation names one engine entry point. It labels events, metrics and records.
type Operation string

const (
	OpValidatePathway     Operation = "validate_pathway"
	OpDetectGaps          Operation = "detect_gaps"
	OpBuildProblemTree    Operation = "build_problem_tree"
	OpScoreCompleteness   Operation = "score_completeness"
	OpScoreQuality        Operation = "score_design_quality"
	OpRefineProblem       Operation = "refine_problem"
	OpValidateOutcome     Operation = "validate_outcome"
	OpValidateTargets     Operation = "validate_targets"
	OpValidatePractices   Operation = "validate_practices"
	OpSuggestIndicators   Operation = "suggest_indicators"
	OpAnalyzeContext      Operation = "analyze_context"
	OpSelectMethodologies Operation = "select_methodologies"
	OpSelectStakeholders  Operation = "select_stakeholders"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent is emitted once per completed engine call.
type EvaluationEvent struct {
	EventBase
	Operation Operation     `json:"operation"`
	Findings  int           `json:"findings"`        // issues, warnings or feedback items raised
	Score     *float64      `json:"score,omitempty"` // set by scoring operations only
	Duration  time.Duration `json:"duration"`
}

// CollaboratorEvent reports a degraded call to an external collaborator.
type CollaboratorEvent struct {
	EventBase
	Operation Operation `json:"operation"`
	Key       string    `json:"key"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnEvaluation   func(context.Context, *EvaluationEvent)
	OnLookupFailed func(context.Context, *CollaboratorEvent)
	OnRecordFailed func(context.Context, *CollaboratorEvent)
}
