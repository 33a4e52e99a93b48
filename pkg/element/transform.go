package element

import (
	"github.com/alexisbeaulieu97/termtint/pkg/text"
)

// Text option names understood by the markup renderer.
const (
	OptionBold       = "bold"
	OptionUnderscore = "underscore"
)

// ANSI escapes for effects the tag renderer has no option for; these bake
// straight into the content instead of going through the property tree.
const (
	ansiItalic        = "\x1b[3m"
	ansiConceal       = "\x1b[8m"
	ansiStrikethrough = "\x1b[9m"
	ansiReset         = "\x1b[0m"
)

const defaultTruncateTail = "..."

// FontBold renders the content in bold. Options accumulate in order and
// duplicates are kept.
func (e Element) FontBold() Element {
	return e.With(Properties{Options: []string{OptionBold}})
}

// Underline renders the content underlined.
func (e Element) Underline() Element {
	return e.With(Properties{Options: []string{OptionUnderscore}})
}

// Italic wraps the content in raw italic escape codes, bypassing the tag
// system entirely.
func (e Element) Italic() Element {
	return e.withContent(ansiItalic + e.content + ansiReset)
}

// LineThrough wraps the content in raw strikethrough escape codes.
func (e Element) LineThrough() Element {
	return e.withContent(ansiStrikethrough + e.content + ansiReset)
}

// Invisible wraps the content in raw conceal escape codes.
func (e Element) Invisible() Element {
	return e.withContent(ansiConceal + e.content + ansiReset)
}

// Truncate crops the content to limit display columns, appending tail
// (default "...") whenever anything is cut off.
func (e Element) Truncate(limit int, tail ...string) Element {
	end := defaultTruncateTail
	if len(tail) > 0 {
		end = tail[0]
	}
	return e.withContent(text.Truncate(e.content, limit, end))
}

// Width forces the content onto a fixed size of n, padding short text with
// spaces and cropping long text to n display columns.
func (e Element) Width(n int) Element {
	return e.withContent(text.FixedWidth(e.content, n))
}

// Uppercase maps the content to upper case.
func (e Element) Uppercase() Element {
	return e.withContent(text.Upper(e.content))
}

// Lowercase maps the content to lower case.
func (e Element) Lowercase() Element {
	return e.withContent(text.Lower(e.content))
}

// Capitalize title-cases each word of the content.
func (e Element) Capitalize() Element {
	return e.withContent(text.Title(e.content))
}

// Snakecase converts the content to snake case.
func (e Element) Snakecase() Element {
	return e.withContent(text.Snake(e.content))
}
