package translate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/logframe/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixer struct{ calls int }

func (u *prefixer) Translate(_ context.Context, text, lang string) (string, error) {
	u.calls++
	if text == "fail" {
		return "", errors.New("backend down")
	}
	return lang + ":" + text, nil
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{
		"message": "hello",
		"items":   []any{"a", "fail", 3.0},
		"nested":  map[string]any{"ok": true, "names": []string{"x"}},
	}

	out := translate.Apply(ctx, &prefixer{}, "hi", in)

	assert.Equal(t, map[string]any{
		"message": "hi:hello",
		"items":   []any{"hi:a", "fail", 3.0},
		"nested":  map[string]any{"ok": true, "names": []string{"hi:x"}},
	}, out)
	assert.Equal(t, "hello", in["message"], "input must not be mutated")
}

func TestApply_Identity(t *testing.T) {
	tr := &prefixer{}
	for _, lang := range []string{"", "en"} {
		assert.Equal(t, "hello", translate.Apply(context.Background(), tr, lang, "hello"))
	}
	assert.Equal(t, "hello", translate.Apply(context.Background(), nil, "hi", "hello"))
	assert.Zero(t, tr.calls)
}

func TestValue(t *testing.T) {
	type report struct {
		Issues []string `json:"issues"`
		Valid  bool     `json:"is_valid"`
	}
	out, err := translate.Value(context.Background(), &prefixer{}, "ta", report{Issues: []string{"Missing impact"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"issues": []any{"ta:Missing impact"}, "is_valid": false}, out)
}

func TestDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hi:\n  Missing impact: प्रभाव अनुपस्थित\nta: {}\n"), 0644))

	d, err := translate.LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, d.Languages())

	out, err := d.Translate(context.Background(), " Missing impact ", "hi")
	require.NoError(t, err)
	assert.Equal(t, "प्रभाव अनुपस्थित", out)

	_, err = d.Translate(context.Background(), "Unknown", "hi")
	assert.ErrorIs(t, err, translate.ErrNoTranslation)
	_, err = d.Translate(context.Background(), "Missing impact", "fr")
	assert.ErrorIs(t, err, translate.ErrNoTranslation)

	res := translate.Apply(context.Background(), d, "hi", []any{"Missing impact", "Unknown"})
	assert.Equal(t, []any{"प्रभाव अनुपस्थित", "Unknown"}, res)
}

func TestLoadDictionary_Missing(t *testing.T) {
	d, err := translate.LoadDictionary(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Empty(t, d.Languages())
}

func TestLoadDictionary_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hi: [unclosed"), 0644))
	_, err := translate.LoadDictionary(path)
	assert.Error(t, err)
}
