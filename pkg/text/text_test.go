package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthCountsColumnsNotBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"empty string", "", 0},
		{"plain ascii", "hello", 5},
		{"accented latin", "héllo", 5},
		{"wide glyphs take two columns", "日本語", 6},
		{"mixed narrow and wide", "go日本", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Width(tc.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		limit int
		tail  string
		want  string
	}{
		{"short string is untouched", "hello", 10, "...", "hello"},
		{"exact fit is untouched", "hello", 8, "...", "hello"},
		{"long string is cropped", "hello world", 8, "...", "hello..."},
		{"crop whitespace is trimmed", "hello world", 9, "...", "hello..."},
		{"empty tail crops plainly", "hello world", 5, "", "hello"},
		{"wide glyphs crop on columns", "日本語テスト", 7, "…", "日本語…"},
		{"tail wider than limit leaves only tail", "abc", 2, "...", "..."},
		{"empty input stays empty", "", 4, "...", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Truncate(tc.input, tc.limit, tc.tail))
		})
	}
}

func TestTruncateNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "hello world", "日本語のテキスト", "padded    out"}
	for limit := 3; limit <= 12; limit++ {
		for _, input := range inputs {
			got := Truncate(input, limit, "...")
			require.LessOrEqual(t, Width(got), limit, "input %q limit %d", input, limit)
		}
	}
}

func TestFixedWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		target int
		want   string
	}{
		{"short string is padded", "hi", 5, "hi   "},
		{"exact length is untouched", "hello", 5, "hello"},
		{"long string is cropped", "hello world", 5, "hello"},
		{"crop whitespace is trimmed", "hi  there", 4, "hi"},
		{"negative target clamps to zero", "x", -1, ""},
		{"empty input is padded", "", 3, "   "},
		// The length check counts codepoints, the crop counts columns.
		// Two wide codepoints fit a target of three and get one pad space.
		{"wide glyphs pad on codepoint count", "日本", 3, "日本 "},
		{"wide glyphs crop on columns", "日本語", 2, "日"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FixedWidth(tc.input, tc.target))
		})
	}
}

func TestFixedWidthInvariantForNarrowText(t *testing.T) {
	t.Parallel()

	// Inputs without internal whitespace, so the post-crop trim never
	// shortens the result below the target.
	for target := 0; target <= 10; target++ {
		for _, input := range []string{"", "a", "hello", "abcdefghijkl"} {
			got := FixedWidth(input, target)
			require.Equal(t, target, Width(got), "input %q target %d", input, target)
		}
	}
}

func TestCaseTransforms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HELLO", Upper("hello"))
	assert.Equal(t, "hello", Lower("HeLLo"))
	assert.Equal(t, "ÜBER", Upper("über"))

	// Both directions are idempotent.
	assert.Equal(t, Upper("mIxEd"), Upper(Upper("mIxEd")))
	assert.Equal(t, Lower("mIxEd"), Lower(Lower("mIxEd")))
}

func TestTitleCasesEachWord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain words", "hello world", "Hello World"},
		{"upper case is folded", "FOO bar", "Foo Bar"},
		{"accented initials", "émile zola", "Émile Zola"},
		{"empty string", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Title(tc.input))
		})
	}
}

func TestSnake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"pascal case", "FooBar", "foo_bar"},
		{"camel case", "fooBar", "foo_bar"},
		{"consecutive capitals split", "ABC", "a_b_c"},
		{"existing underscore is not doubled", "foo_Bar", "foo_bar"},
		{"already snake case", "foo_bar", "foo_bar"},
		{"leading capital gets no underscore", "Foo", "foo"},
		{"unicode capitals", "ÜberMensch", "über_mensch"},
		{"empty string", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Snake(tc.input))
		})
	}
}
