package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoTranslation is returned when a dictionary has no entry for a phrase.
var ErrNoTranslation = errors.New("no translation")

// Dictionary is a phrase table per language.
//
//	hi:
//	  "Missing impact": "प्रभाव अनुपस्थित"
type Dictionary map[string]map[string]string

// LoadDictionary reads a dictionary from a YAML file.
// A missing file yields an empty dictionary.
func LoadDictionary(path string) (Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Dictionary{}, nil
		}
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	var d Dictionary
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	if d == nil {
		d = Dictionary{}
	}
	return d, nil
}

// Translate looks text up verbatim, then with surrounding space trimmed.
func (d Dictionary) Translate(_ context.Context, text, lang string) (string, error) {
	phrases, ok := d[lang]
	if !ok {
		return "", fmt.Errorf("%w: language %q", ErrNoTranslation, lang)
	}
	if out, ok := phrases[text]; ok {
		return out, nil
	}
	if out, ok := phrases[strings.TrimSpace(text)]; ok {
		return out, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoTranslation, text)
}

// Languages lists the languages with at least one phrase.
func (d Dictionary) Languages() []string {
	var out []string
	for lang, phrases := range d {
		if len(phrases) > 0 {
			out = append(out, lang)
		}
	}
	return out
}
