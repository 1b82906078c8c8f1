// Package textclamp measures and clamps wrapped text for a fixed column width.
//
// Measuring is done on an unclamped wrap that is never displayed; callers
// then render the clamped form. Nothing in here holds state, so several
// components can measure concurrently.
package textclamp

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Ellipsis terminates the last visible line of clamped text.
const Ellipsis = "…"

// Measurement is the result of laying text out at a given width.
type Measurement struct {
	NaturalLines int
	MaxLines     int
	Overflow     bool
	// OK is false when there was no usable width to lay out against.
	OK bool
}

// Wrap word-wraps text to width, hard-breaking words that are wider than
// the column. Paragraph breaks are kept, blank lines included.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return []string{}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		wrapped := wrap.String(wordwrap.String(para, width), width)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	return lines
}

// Measure reports how many lines text needs at width and whether that
// exceeds maxLines. A width of zero or less yields a failed measurement
// with Overflow false.
func Measure(text string, width, maxLines int) Measurement {
	m := Measurement{MaxLines: maxLines}
	if width <= 0 || maxLines <= 0 {
		return m
	}
	m.OK = true
	m.NaturalLines = len(Wrap(text, width))
	m.Overflow = m.NaturalLines > maxLines
	return m
}

// Clamp returns at most maxLines wrapped lines of text. When lines were
// dropped the last visible line ends with an ellipsis.
func Clamp(text string, width, maxLines int) string {
	lines := Wrap(text, width)
	if maxLines <= 0 || len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}

	visible := append([]string(nil), lines[:maxLines]...)
	last := strings.TrimRight(visible[maxLines-1], " ")
	if ansi.PrintableRuneWidth(last)+ansi.PrintableRuneWidth(Ellipsis) <= width {
		last += Ellipsis
	} else {
		last = truncate.StringWithTail(last, uint(width), Ellipsis)
	}
	visible[maxLines-1] = last
	return strings.Join(visible, "\n")
}
