// Package text provides display-width aware measurement and mutation helpers
// for single-line terminal strings. Every function is pure and operates on
// codepoints or terminal columns, never on raw bytes.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Width returns the number of terminal columns s occupies. Wide glyphs count
// two columns, so this differs from both the byte and the codepoint length.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate crops s so the result never exceeds limit display columns. The
// limit is first reduced by the width of tail; when s already fits the
// adjusted limit it is returned unchanged, otherwise it is cropped to the
// adjusted limit, right-trimmed of whitespace exposed by the crop, and
// suffixed with tail.
func Truncate(s string, limit int, tail string) string {
	limit -= Width(tail)
	if limit < 0 {
		limit = 0
	}

	if Width(s) <= limit {
		return s
	}

	cropped := runewidth.Truncate(s, limit, "")
	return strings.TrimRightFunc(cropped, unicode.IsSpace) + tail
}

// FixedWidth forces s onto a fixed target size. Strings of up to target
// codepoints are right-padded with spaces to exactly target codepoints;
// longer strings are cropped to target display columns and right-trimmed.
// The length check counts codepoints while the crop counts columns, so the
// two measures diverge for wide glyphs.
func FixedWidth(s string, target int) string {
	if target < 0 {
		target = 0
	}

	if length := utf8.RuneCountInString(s); length <= target {
		return s + strings.Repeat(" ", target-length)
	}

	cropped := runewidth.Truncate(s, target, "")
	return strings.TrimRightFunc(cropped, unicode.IsSpace)
}

// Upper maps s to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Lower maps s to lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Title title-cases each word of s using Unicode casing rules. A caser is
// stateful and not safe for concurrent use, so a fresh one is built per call.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Snake converts s to snake case: an underscore is inserted before every
// upper-case letter that follows anything other than an underscore, then the
// whole string is lowered.
func Snake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && prev != '_' {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	return b.String()
}
