package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/config"
	"github.com/aretw0/logframe/internal/logging"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceYAML = `
toc_patterns:
  - theme: FLN
    outputs: [Teachers trained]
    outcomes: []
`

func TestNewRuntime_FileCatalogAndRecords(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "reference.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(referenceYAML), 0644))

	cfg := config.Default()
	cfg.Catalog.File = catalog
	cfg.Records.Dir = filepath.Join(dir, "records")
	cfg.MetricsFile = filepath.Join(dir, "logframe.prom")

	rt, err := NewRuntime(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	g, err := domain.NewGraph(nil, nil)
	require.NoError(t, err)
	gaps, err := rt.Engine.DetectGaps(context.Background(), "FLN", g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Consider adding output: 'Teachers trained' (commonly seen in successful programs)."}, gaps)

	require.NoError(t, rt.Close())
	raw, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "logframe_evaluations_total")

	_, err = os.Stat(filepath.Join(cfg.Records.Dir, "_anonymous.json"))
	assert.NoError(t, err)
}

func TestNewRuntime_InvalidRubric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - name: a\n    weight: 50\n    required_fields: [x]\n"), 0644))

	cfg := config.Default()
	cfg.RubricPath = path
	_, err := NewRuntime(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestNewRuntime_InvalidTTL(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.Redis.Addr = "localhost:0"
	cfg.Catalog.Redis.TTL = "forever"
	_, err := NewRuntime(context.Background(), cfg, logging.NewNop())
	assert.ErrorContains(t, err, "invalid redis ttl")
}

func TestLoadReferenceData(t *testing.T) {
	_, err := LoadReferenceData(context.Background(), config.Catalog{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0644))
	data, err := LoadReferenceData(context.Background(), config.Catalog{File: path})
	require.NoError(t, err)
	assert.Len(t, data.PathwayPatterns, 1)
}

func TestReadInput(t *testing.T) {
	Stdin = strings.NewReader(`{"theme": "FLN", "nodes": [{"id": "A1", "type": "activity", "label": "Train"}], "edges": []}`)
	t.Cleanup(func() { Stdin = os.Stdin })

	var req logframe.PathwayRequest
	require.NoError(t, ReadInput("-", &req))
	assert.Equal(t, "FLN", req.Theme)
	assert.Equal(t, domain.KindActivity, req.Nodes[0].Kind)

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outcomes:\n  smart_outcomes:\n    - Increase ORF\n"), 0644))
	var snap domain.Snapshot
	require.NoError(t, ReadInput(path, &snap))
	section, ok := snap["outcomes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Increase ORF"}, section["smart_outcomes"])

	assert.Error(t, ReadInput(filepath.Join(t.TempDir(), "missing.yaml"), &snap))
}

type fakeLocalizer struct{}

func (fakeLocalizer) Localize(_ context.Context, lang string, v any) (any, error) {
	return map[string]any{"logic_issues": []any{lang + ":x"}, "is_valid": true}, nil
}

func TestLocalize(t *testing.T) {
	out := Localize(context.Background(), fakeLocalizer{}, "hi", logframe.PathwayReport{})
	assert.True(t, out.IsValid)
	assert.Equal(t, []string{"hi:x"}, out.Issues)
}

func TestNewRuntime_RedactsRecords(t *testing.T) {
	cfg := config.Default()
	cfg.Records.Dir = filepath.Join(t.TempDir(), "records")
	cfg.Records.Redact = []string{"^clarity_score$"}

	rt, err := NewRuntime(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer rt.Close()

	_, err = rt.Engine.RefineProblem(context.Background(), "org-1", "Students lack reading skills")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(cfg.Records.Dir, "org-*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	raw, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"clarity_score": "***"`)

	recs, err := rt.Records().Records(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestNewRuntime_InvalidRedactPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Records.Dir = t.TempDir()
	cfg.Records.Redact = []string{"("}
	_, err := NewRuntime(context.Background(), cfg, logging.NewNop())
	assert.ErrorContains(t, err, "invalid redact pattern")
}

func TestNewRuntime_LogsEachEvaluationOnce(t *testing.T) {
	var buf bytes.Buffer
	rt, err := NewRuntime(context.Background(), config.Default(), logging.NewWriter(&buf, slog.LevelDebug, "text"))
	require.NoError(t, err)
	defer rt.Close()

	_, err = rt.Engine.ScoreCompleteness(context.Background(), "org-1", domain.Snapshot{})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), `msg="evaluation complete"`))
	assert.Contains(t, buf.String(), "score=0")
	assert.NotContains(t, buf.String(), "msg=evaluation ")
}
