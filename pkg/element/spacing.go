package element

import "strings"

// Margins become newlines and spaces around the tag at serialization time;
// paddings are baked into the content immediately as literal spaces. Negative
// amounts clamp to zero everywhere.

// Mt sets the top margin to n blank lines.
func (e Element) Mt(n int) Element { return e.margin(MarginTop, n) }

// Mb sets the bottom margin to n blank lines.
func (e Element) Mb(n int) Element { return e.margin(MarginBottom, n) }

// Ml sets the left margin to n columns.
func (e Element) Ml(n int) Element { return e.margin(MarginLeft, n) }

// Mr sets the right margin to n columns.
func (e Element) Mr(n int) Element { return e.margin(MarginRight, n) }

// Mx sets both horizontal margins to n.
func (e Element) Mx(n int) Element { return e.Ml(n).Mr(n) }

// My sets both vertical margins to n.
func (e Element) My(n int) Element { return e.Mt(n).Mb(n) }

// M sets all four margins to n.
func (e Element) M(n int) Element { return e.My(n).Mx(n) }

func (e Element) margin(side string, n int) Element {
	return e.With(Properties{Margins: map[string]int{side: clampSpacing(n)}})
}

// Pl prepends n literal spaces to the content.
func (e Element) Pl(n int) Element {
	return e.withContent(strings.Repeat(" ", clampSpacing(n)) + e.content)
}

// Pr appends n literal spaces to the content.
func (e Element) Pr(n int) Element {
	return e.withContent(e.content + strings.Repeat(" ", clampSpacing(n)))
}

// P pads the content with n spaces on both sides.
func (e Element) P(n int) Element { return e.Pl(n).Pr(n) }

// Px is an alias of P.
func (e Element) Px(n int) Element { return e.P(n) }

func clampSpacing(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
