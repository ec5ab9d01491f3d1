package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/ports"
)

// Mask replaces every redacted value.
const Mask = "***"

type redactMiddleware struct {
	next     ports.Recorder
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a middleware that masks the values of result
// keys matching any of the patterns before the record is persisted.
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.Recorder) ports.Recorder {
		if len(patterns) == 0 {
			return next
		}
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

// Record masks a generic copy of rec.Result; the caller's value is untouched.
func (m *redactMiddleware) Record(ctx context.Context, rec domain.Record) error {
	raw, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("failed to reshape record: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to reshape record: %w", err)
	}

	rec.Result = mask(generic, m.patterns)
	return m.next.Record(ctx, rec)
}

// Records passes through when the wrapped recorder can read back.
func (m *redactMiddleware) Records(ctx context.Context, organizationID string) ([]domain.Record, error) {
	reader, ok := m.next.(ports.RecordReader)
	if !ok {
		return nil, fmt.Errorf("wrapped recorder %T cannot read records", m.next)
	}
	return reader.Records(ctx, organizationID)
}

func mask(v any, patterns []*regexp.Regexp) any {
	switch t := v.(type) {
	case map[string]any:
		for k, sub := range t {
			if matchesAny(k, patterns) {
				t[k] = Mask
				continue
			}
			t[k] = mask(sub, patterns)
		}
		return t
	case []any:
		for i, sub := range t {
			t[i] = mask(sub, patterns)
		}
		return t
	default:
		return v
	}
}

func matchesAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
