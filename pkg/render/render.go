// Package render turns serialized element markup into ANSI escape
// sequences. Writer is a Sink: point an Element at it and the markup tag
// becomes real terminal styling instead of text.
package render

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/termtint/pkg/element"
)

// markupPattern matches one serialized element: optional top margin and
// left indent, a single attribute tag, the body, the closing tag, then the
// right and bottom margins. (?s) lets the body span embedded escape bytes.
var markupPattern = regexp.MustCompile(`(?s)^(\n*)( *)<([^<>]*)>(.*)</>( *)(\n*)$`)

// Writer interprets element markup and writes the styled result to an
// io.Writer. Lines that do not parse as markup pass through verbatim, so
// the sink contract holds for arbitrary input.
type Writer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

var _ element.Sink = (*Writer)(nil)

// NewWriter builds a Writer targeting out. The color profile is detected
// from out; force one with SetColorProfile when the target is not a
// terminal.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
}

// SetColorProfile pins the ANSI capability the writer styles for.
// lipgloss v1.x auto-detects TrueColor but doesn't apply it without an
// explicit SetColorProfile call on some terminals.
func (w *Writer) SetColorProfile(profile termenv.Profile) {
	w.renderer.SetColorProfile(profile)
}

// WriteLine expands line and writes it out, discarding write errors per
// the fire-and-forget sink contract.
func (w *Writer) WriteLine(line string) {
	_, _ = io.WriteString(w.out, w.Expand(line))
}

// Expand converts one markup line into its ANSI form. Margins survive as
// literal newlines and spaces outside the styled span, and raw escape
// sequences inside the body are never re-escaped. Unparseable input comes
// back unchanged.
func (w *Writer) Expand(line string) string {
	m := markupPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	top, left, attrs, body, right, bottom := m[1], m[2], m[3], m[4], m[5], m[6]

	return top + left + w.expandTag(attrs, body) + right + bottom
}

func (w *Writer) expandTag(attrs, body string) string {
	var foreground, background, href string
	var options []string

	for _, attr := range strings.Split(attrs, ";") {
		key, value, ok := strings.Cut(attr, "=")
		if !ok {
			continue
		}
		switch key {
		case "href":
			href = value
		case "fg":
			foreground = value
		case "bg":
			background = value
		case "options":
			if value != "" {
				options = strings.Split(value, ",")
			}
		}
	}

	out := body
	if style, styled := w.tagStyle(foreground, background, options); styled {
		out = style.Render(out)
	}
	if href != "" {
		out = termenv.Hyperlink(href, out)
	}
	return out
}

// tagStyle assembles the lipgloss style for a tag. The boolean reports
// whether any attribute produced styling; an unstyled body must stay
// byte-identical, so callers skip Render entirely when it is false.
func (w *Writer) tagStyle(foreground, background string, options []string) (lipgloss.Style, bool) {
	style := w.renderer.NewStyle()
	styled := false

	if color, ok := tagColor(foreground); ok {
		style = style.Foreground(color)
		styled = true
	}
	if color, ok := tagColor(background); ok {
		style = style.Background(color)
		styled = true
	}
	for _, option := range options {
		switch option {
		case "bold":
			style = style.Bold(true)
		case "underscore":
			style = style.Underline(true)
		case "blink":
			style = style.Blink(true)
		case "reverse":
			style = style.Reverse(true)
		default:
			continue
		}
		styled = true
	}

	return style, styled
}

// ansiIndex maps the portable color names to their ANSI palette slots.
// Anything else (hex values, numeric indices) goes to lipgloss untouched.
var ansiIndex = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

func tagColor(name string) (lipgloss.TerminalColor, bool) {
	if name == "" || name == "default" {
		return nil, false
	}
	if index, ok := ansiIndex[name]; ok {
		return lipgloss.Color(index), true
	}
	return lipgloss.Color(name), true
}
