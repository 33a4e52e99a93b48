package element

import (
	"github.com/alexisbeaulieu97/termtint/pkg/palette"
)

// Bg sets the background color verbatim. Earlier values stay in the tree as
// history; serialization reads the newest one.
func (e Element) Bg(color string) Element {
	return e.With(Properties{Colors: map[string][]string{RoleBackground: {color}}})
}

// BgVariant resolves the numbered shade of color against the process palette
// before applying it as the background. Shade zero applies color verbatim.
// An unknown variant aborts the operation; no partial Element is returned.
func (e Element) BgVariant(color string, shade int) (Element, error) {
	resolved, err := palette.Default().Resolve(color, shade)
	if err != nil {
		return Element{}, err
	}
	return e.Bg(resolved), nil
}

// TextColor sets the foreground color verbatim.
func (e Element) TextColor(color string) Element {
	return e.With(Properties{Colors: map[string][]string{RoleForeground: {color}}})
}

// TextColorVariant resolves the numbered shade of color against the process
// palette before applying it as the foreground. Shade zero applies color
// verbatim. An unknown variant aborts the operation.
func (e Element) TextColorVariant(color string, shade int) (Element, error) {
	resolved, err := palette.Default().Resolve(color, shade)
	if err != nil {
		return Element{}, err
	}
	return e.TextColor(resolved), nil
}

// Href links the element's content to target. As with colors, repeated calls
// accumulate and the newest target wins at render time.
func (e Element) Href(target string) Element {
	return e.With(Properties{Hrefs: []string{target}})
}
