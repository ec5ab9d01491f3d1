package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/logframe/internal/config"
	"github.com/aretw0/logframe/internal/logging"
	"gopkg.in/yaml.v3"
)

// Stdin is read when an input path is "-".
var Stdin io.Reader = os.Stdin

// ReadInput decodes a YAML or JSON document into out. JSON is valid YAML,
// so one decoder serves both.
func ReadInput(path string, out any) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse input %s: %w", path, err)
	}
	return nil
}

// WriteJSON prints v indented.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// CreateLogger configures the application logger from cfg.
func CreateLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level, cfg.LogFormat), nil
}

// Localizer translates values through the engine.
type Localizer interface {
	Localize(ctx context.Context, lang string, v any) (any, error)
}

// Localize translates v and decodes the result back into T.
// On failure v is returned untranslated.
func Localize[T any](ctx context.Context, l Localizer, lang string, v T) T {
	shaped, err := l.Localize(ctx, lang, v)
	if err != nil {
		return v
	}
	if typed, ok := shaped.(T); ok {
		return typed
	}
	raw, err := json.Marshal(shaped)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
