package logframe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/logframe/internal/quality"
	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/ports"
	"github.com/aretw0/logframe/pkg/rubric"
)

// Engine is the high-level entry point for the logframe library.
// It holds no per-call state and is safe for concurrent use when its
// collaborators are.
type Engine struct {
	catalog    ports.ReferenceCatalog
	recorder   ports.Recorder
	translator ports.Translator
	rubric     rubric.Rubric
	rules      rubric.QualityRules
	analyzer   *quality.Analyzer
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	now        func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCatalog sets the reference data source. Defaults to an empty catalog.
func WithCatalog(c ports.ReferenceCatalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithRecorder sets where derived records go. Without one nothing is recorded.
func WithRecorder(r ports.Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithTranslator sets the translator used by Localize.
func WithTranslator(t ports.Translator) Option {
	return func(e *Engine) {
		e.translator = t
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRubric replaces the completeness rubric. It is validated by New.
func WithRubric(r rubric.Rubric) Option {
	return func(e *Engine) {
		e.rubric = r
	}
}

// WithQualityRules replaces the design quality rule table.
func WithQualityRules(rules rubric.QualityRules) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithClock sets the time source of record timestamps and event durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		rubric: rubric.Default(),
		rules:  rubric.DefaultQualityRules(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if err := eng.rubric.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rubric: %w", err)
	}
	if err := eng.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quality rules: %w", err)
	}
	if eng.catalog == nil {
		eng.catalog = memory.NewCatalog(domain.ReferenceData{})
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("component", "engine")
	eng.analyzer = quality.New(eng.rules)

	return eng, nil
}

// Rubric returns the completeness rubric in use.
func (e *Engine) Rubric() rubric.Rubric {
	return e.rubric
}

// evaluation tracks one engine call from start to its completion event.
type evaluation struct {
	e       *Engine
	ctx     context.Context
	op      domain.Operation
	orgID   string
	theme   string
	started time.Time
}

func (e *Engine) begin(ctx context.Context, op domain.Operation, orgID, theme string) *evaluation {
	return &evaluation{e: e, ctx: ctx, op: op, orgID: orgID, theme: theme, started: e.now()}
}

// lookupFailed logs a degraded catalog call and fires the hook.
func (ev *evaluation) lookupFailed(key string, err error) {
	ev.e.logger.WarnContext(ev.ctx, "reference lookup failed",
		"operation", ev.op, "key", key, "error", err)
	if ev.e.hooks.OnLookupFailed != nil {
		ev.e.hooks.OnLookupFailed(ev.ctx, &domain.CollaboratorEvent{
			EventBase: domain.EventBase{Timestamp: ev.e.now(), Type: domain.EventLookupFailed},
			Operation: ev.op,
			Key:       key,
			Err:       err,
		})
	}
}

// done records result, then emits the evaluation event.
func (ev *evaluation) done(result any, findings int, score *float64) {
	e := ev.e
	finished := e.now()

	if e.recorder != nil {
		rec := domain.Record{
			Operation:      ev.op,
			OrganizationID: ev.orgID,
			Theme:          ev.theme,
			Result:         result,
			EvaluatedAt:    finished.UTC(),
		}
		if err := e.recorder.Record(ev.ctx, rec); err != nil {
			e.logger.WarnContext(ev.ctx, "record failed",
				"operation", ev.op, "organization_id", ev.orgID, "error", err)
			if e.hooks.OnRecordFailed != nil {
				e.hooks.OnRecordFailed(ev.ctx, &domain.CollaboratorEvent{
					EventBase: domain.EventBase{Timestamp: finished, Type: domain.EventRecordFailed},
					Operation: ev.op,
					Key:       ev.orgID,
					Err:       err,
				})
			}
		}
	}

	duration := finished.Sub(ev.started)
	attrs := []any{"operation", ev.op, "findings", findings, "duration", duration}
	if score != nil {
		attrs = append(attrs, "score", *score)
	}
	e.logger.DebugContext(ev.ctx, "evaluation complete", attrs...)
	if e.hooks.OnEvaluation != nil {
		e.hooks.OnEvaluation(ev.ctx, &domain.EvaluationEvent{
			EventBase: domain.EventBase{Timestamp: finished, Type: domain.EventEvaluation},
			Operation: ev.op,
			Findings:  findings,
			Score:     score,
			Duration:  duration,
		})
	}
}
