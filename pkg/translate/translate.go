// Package translate localizes JSON-shaped results string by string.
//
// A failed translation never fails the pass: the original text is kept.
package translate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/logframe/pkg/ports"
)

// DefaultLanguage is the language results are produced in.
const DefaultLanguage = "en"

// IsIdentity reports whether lang needs no translation.
func IsIdentity(lang string) bool {
	return lang == "" || lang == DefaultLanguage
}

// Apply returns a copy of v with every string translated into lang.
// Maps and slices are walked recursively; map keys are left alone.
// Other values are returned unchanged.
func Apply(ctx context.Context, tr ports.Translator, lang string, v any) any {
	if tr == nil || IsIdentity(lang) {
		return v
	}
	return walk(ctx, tr, lang, v)
}

func walk(ctx context.Context, tr ports.Translator, lang string, v any) any {
	switch t := v.(type) {
	case string:
		out, err := tr.Translate(ctx, t, lang)
		if err != nil {
			return t
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = walk(ctx, tr, lang, item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = walk(ctx, tr, lang, item)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, item := range t {
			out[i] = walk(ctx, tr, lang, item).(string)
		}
		return out
	default:
		return v
	}
}

// Value converts an arbitrary result to its JSON shape and translates it.
func Value(ctx context.Context, tr ports.Translator, lang string, v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var shaped any
	if err := json.Unmarshal(raw, &shaped); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return Apply(ctx, tr, lang, shaped), nil
}
