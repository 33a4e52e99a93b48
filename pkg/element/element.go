// Package element implements an immutable, chainable styling value that
// accumulates colors, text options, spacing and link metadata around a text
// fragment and serializes the result into a single inline-tag markup string
// such as "<fg=red;options=bold>text</>".
//
// Every style operation returns a new Element and never mutates its receiver,
// so intermediate values of a chain stay independently renderable and chains
// are safe to share across goroutines. The only reference shared between
// derived Elements is the output sink.
package element

import (
	"io"
	"os"
	"strings"
)

// Sink receives finished markup lines. Writes are fire and forget;
// implementations must pass embedded tags and raw ANSI sequences through
// without re-escaping them.
type Sink interface {
	WriteLine(line string)
}

// WriterSink adapts an io.Writer into a Sink. Lines are written verbatim;
// vertical spacing comes from the element's own margins, not from the sink.
type WriterSink struct {
	Writer io.Writer
}

// WriteLine writes line to the underlying writer, discarding write errors.
func (s WriterSink) WriteLine(line string) {
	_, _ = io.WriteString(s.Writer, line)
}

var defaultSink Sink = WriterSink{Writer: os.Stdout}

// Element is an immutable chunk of text plus its accumulated styling.
// Construct one with New and derive styled variants through the chainable
// operations; the zero value is usable and renders an empty unstyled tag.
type Element struct {
	content string
	props   Properties
	sink    Sink
}

// New constructs an Element around content writing to sink. A nil sink makes
// Render fall back to standard output. The initial property tree carries the
// default background so later merges accumulate on top of it.
func New(content string, sink Sink) Element {
	return Element{
		content: content,
		props: Properties{
			Colors: map[string][]string{RoleBackground: {ColorDefault}},
		},
		sink: sink,
	}
}

// Content returns the element's current text payload.
func (e Element) Content() string {
	return e.content
}

// Properties returns a copy of the element's property tree. Mutating the
// copy never affects the element.
func (e Element) Properties() Properties {
	return e.props.clone()
}

// With merges an arbitrary property patch into a new Element. It is the
// escape hatch underneath every other property-level operation.
func (e Element) With(patch Properties) Element {
	return Element{content: e.content, props: e.props.Merge(patch), sink: e.sink}
}

// withContent derives an Element with replaced text. The property tree is
// shared, which is safe because no operation ever mutates one in place.
func (e Element) withContent(content string) Element {
	return Element{content: content, props: e.props, sink: e.sink}
}

// String serializes the element into its markup form:
//
//	"\n"×mt + " "×ml + "<href=H;fg=F;bg=B;options=O1,O2>" + content + "</>" + " "×mr + "\n"×mb
//
// Only the last accumulated value per color role and for href is emitted, and
// roles resolved to the default color are skipped. The options segment is
// always present, even when empty, so the tag stays well formed.
func (e Element) String() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("\n", e.props.Margin(MarginTop)))
	b.WriteString(strings.Repeat(" ", e.props.Margin(MarginLeft)))

	b.WriteByte('<')
	if href, ok := e.props.LastHref(); ok {
		b.WriteString("href=")
		b.WriteString(href)
		b.WriteByte(';')
	}
	for _, role := range []string{RoleForeground, RoleBackground} {
		value, ok := e.props.LastColor(role)
		if !ok || value == ColorDefault {
			continue
		}
		b.WriteString(role)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte(';')
	}
	b.WriteString("options=")
	b.WriteString(strings.Join(e.props.Options, ","))
	b.WriteByte('>')

	b.WriteString(e.content)
	b.WriteString("</>")

	b.WriteString(strings.Repeat(" ", e.props.Margin(MarginRight)))
	b.WriteString(strings.Repeat("\n", e.props.Margin(MarginBottom)))

	return b.String()
}

// Render hands the serialized element to its sink.
func (e Element) Render() {
	sink := e.sink
	if sink == nil {
		sink = defaultSink
	}
	sink.WriteLine(e.String())
}
