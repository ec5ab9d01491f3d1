package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the logframe banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct{ text, color string }{
		{" _                __                          ", "#34d399"},
		{"| | ___   __ _   / _|_ __ __ _ _ __ ___   ___ ", "#2dd4bf"},
		{"| |/ _ \\ / _` | | |_| '__/ _` | '_ ` _ \\ / _ \\", "#22d3ee"},
		{"| | (_) | (_| | |  _| | | (_| | | | | | |  __/", "#38bdf8"},
		{"|_|\\___/ \\__, | |_| |_|  \\__,_|_| |_| |_|\\___|", "#60a5fa"},
		{"         |___/                                ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Verdict colours a pass/fail word: green when ok, red otherwise.
func Verdict(ok bool, pass, fail string) string {
	p := termenv.ColorProfile()
	if ok {
		return termenv.String(pass).Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String(fail).Foreground(p.Color("#ef4444")).Bold().String()
}

// ScoreColor colours a 0..100 score by band.
func ScoreColor(score float64) string {
	p := termenv.ColorProfile()
	color := "#ef4444"
	switch {
	case score >= 80:
		color = "#22c55e"
	case score >= 50:
		color = "#eab308"
	}
	return termenv.String(fmt.Sprintf("%.2f", score)).Foreground(p.Color(color)).String()
}
