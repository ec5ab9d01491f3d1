package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Output writes markdown reports, styled when the destination is a terminal.
type Output struct {
	w      io.Writer
	render func(string) (string, error)
}

// NewOutput styles only when f is a TTY. Pipes and files get raw markdown.
func NewOutput(f *os.File) *Output {
	o := &Output{w: f}
	if IsTerminal(f) {
		o.render = NewRenderer()
	}
	return o
}

// NewPlainOutput never styles.
func NewPlainOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Styled reports whether markdown goes through glamour.
func (o *Output) Styled() bool {
	return o.render != nil
}

// Print renders markdown to the destination.
func (o *Output) Print(markdown string) error {
	out := markdown
	if o.render != nil {
		rendered, err := o.render(markdown)
		if err == nil {
			out = rendered
		}
	}
	_, err := fmt.Fprint(o.w, out)
	return err
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
