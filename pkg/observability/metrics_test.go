package observability_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()
	score := 76.0

	hooks.OnEvaluation(ctx, &domain.EvaluationEvent{Operation: domain.OpScoreCompleteness, Findings: 3, Score: &score, Duration: time.Millisecond})
	hooks.OnEvaluation(ctx, &domain.EvaluationEvent{Operation: domain.OpScoreCompleteness, Findings: 0})
	hooks.OnLookupFailed(ctx, &domain.CollaboratorEvent{EventBase: domain.EventBase{Type: domain.EventLookupFailed}, Operation: domain.OpDetectGaps})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("score_completeness")))
	assert.Equal(t, 76.0, testutil.ToFloat64(m.Score.WithLabelValues("score_completeness")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("detect_gaps", "lookup_failed")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Findings))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	m.Hooks().OnEvaluation(context.Background(), &domain.EvaluationEvent{Operation: domain.OpValidatePathway})

	path := filepath.Join(t.TempDir(), "logframe.prom")
	require.NoError(t, observability.WriteTextfile(path, reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `logframe_evaluations_total{operation="validate_pathway"} 1`))
}
