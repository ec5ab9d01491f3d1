package ports

import "context"

// Translator translates one string into lang.
// Callers keep the original text when it returns an error.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}
