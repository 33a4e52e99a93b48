// Package classes interprets utility-class strings such as
// "bg-red-500 mt-2 font-bold" by dispatching each token to the matching
// Element operation.
package classes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/termtint/pkg/element"
	"github.com/alexisbeaulieu97/termtint/pkg/errors"
)

// rule binds a token pattern to the Element operation it triggers. The
// submatches of the pattern are handed to apply alongside the element.
type rule struct {
	pattern *regexp.Regexp
	apply   func(e element.Element, matches []string) (element.Element, error)
}

// fixed maps the argument-free tokens to their operations.
var fixed = map[string]func(element.Element) element.Element{
	"font-bold":    element.Element.FontBold,
	"underline":    element.Element.Underline,
	"italic":       element.Element.Italic,
	"line-through": element.Element.LineThrough,
	"invisible":    element.Element.Invisible,
	"uppercase":    element.Element.Uppercase,
	"lowercase":    element.Element.Lowercase,
	"capitalize":   element.Element.Capitalize,
	"snakecase":    element.Element.Snakecase,
}

// spacing maps margin and padding prefixes to their operations.
var spacing = map[string]func(element.Element, int) element.Element{
	"m":  element.Element.M,
	"mx": element.Element.Mx,
	"my": element.Element.My,
	"ml": element.Element.Ml,
	"mr": element.Element.Mr,
	"mt": element.Element.Mt,
	"mb": element.Element.Mb,
	"p":  element.Element.P,
	"px": element.Element.Px,
	"pl": element.Element.Pl,
	"pr": element.Element.Pr,
}

// rules is the dispatch table, matched in order. Shade variants sit above
// the plain color rules so "bg-red-500" never parses as the color
// "red-500".
var rules = []rule{
	{
		pattern: regexp.MustCompile(`^(bg|text)-([a-zA-Z]+)-(\d+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			shade, err := strconv.Atoi(m[3])
			if err != nil {
				return element.Element{}, errors.NewUnknownClassError(m[0])
			}
			if m[1] == "bg" {
				return e.BgVariant(m[2], shade)
			}
			return e.TextColorVariant(m[2], shade)
		},
	},
	{
		pattern: regexp.MustCompile(`^bg-(.+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			return e.Bg(m[1]), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^text-(.+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			return e.TextColor(m[1]), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^(m[xylrtb]?|p[xlr]?)-(\d+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return element.Element{}, errors.NewUnknownClassError(m[0])
			}
			return spacing[m[1]](e, n), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^truncate-(\d+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			limit, err := strconv.Atoi(m[1])
			if err != nil {
				return element.Element{}, errors.NewUnknownClassError(m[0])
			}
			return e.Truncate(limit), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^w-(\d+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return element.Element{}, errors.NewUnknownClassError(m[0])
			}
			return e.Width(n), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^href-(.+)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			return e.Href(m[1]), nil
		},
	},
	{
		pattern: regexp.MustCompile(`^(font-bold|underline|italic|line-through|invisible|uppercase|lowercase|capitalize|snakecase)$`),
		apply: func(e element.Element, m []string) (element.Element, error) {
			return fixed[m[1]](e), nil
		},
	},
}

// Apply interprets the whitespace-separated utility classes against e,
// folding token by token left to right so later tokens win wherever values
// overlap. The first token matching no rule aborts with an
// UnknownClassError; shade-variant failures from the palette propagate
// unchanged. In both cases no partially styled element is returned.
func Apply(e element.Element, classes string) (element.Element, error) {
	for _, class := range strings.Fields(classes) {
		next, err := applyClass(e, class)
		if err != nil {
			return element.Element{}, err
		}
		e = next
	}
	return e, nil
}

func applyClass(e element.Element, class string) (element.Element, error) {
	for _, r := range rules {
		matches := r.pattern.FindStringSubmatch(class)
		if matches == nil {
			continue
		}
		return r.apply(e, matches)
	}
	return element.Element{}, errors.NewUnknownClassError(class)
}
