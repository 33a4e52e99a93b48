package element

// Color roles and margin keys used throughout the property tree. The string
// values double as the attribute names in the serialized markup tag.
const (
	RoleForeground = "fg"
	RoleBackground = "bg"

	MarginTop    = "mt"
	MarginBottom = "mb"
	MarginLeft   = "ml"
	MarginRight  = "mr"

	// ColorDefault marks a role as using the terminal's own color; it is
	// never emitted in the markup tag.
	ColorDefault = "default"
)

// Properties is the accumulated styling metadata of an Element.
//
// Sequence-valued fields (Colors, Options, Hrefs) keep their full history
// across merges; readers that want a single authoritative value take the last
// entry. Margins overwrite per key instead, because every spacing operation
// supplies a complete value. Nothing in this package mutates a Properties
// tree in place; every change goes through Merge.
type Properties struct {
	Colors  map[string][]string
	Options []string
	Margins map[string]int
	Hrefs   []string
}

// Merge returns a new tree combining p with patch. Sequence leaves
// concatenate positionally with patch entries after base entries; margin keys
// present in the patch replace the base value. Neither input is modified and
// the result shares no storage with them.
func (p Properties) Merge(patch Properties) Properties {
	out := p.clone()

	for role, values := range patch.Colors {
		out.Colors[role] = append(out.Colors[role], values...)
	}
	out.Options = append(out.Options, patch.Options...)
	for side, n := range patch.Margins {
		out.Margins[side] = n
	}
	out.Hrefs = append(out.Hrefs, patch.Hrefs...)

	return out
}

// LastColor returns the authoritative value for role. Merges accumulate
// history, so only the final entry counts.
func (p Properties) LastColor(role string) (string, bool) {
	values := p.Colors[role]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// LastHref returns the authoritative link target, if any was set.
func (p Properties) LastHref() (string, bool) {
	if len(p.Hrefs) == 0 {
		return "", false
	}
	return p.Hrefs[len(p.Hrefs)-1], true
}

// Margin returns the spacing for side. Absent keys and negative values read
// as zero, which keeps serialization total.
func (p Properties) Margin(side string) int {
	if n := p.Margins[side]; n > 0 {
		return n
	}
	return 0
}

func (p Properties) clone() Properties {
	out := Properties{
		Colors:  make(map[string][]string, len(p.Colors)),
		Options: append([]string(nil), p.Options...),
		Margins: make(map[string]int, len(p.Margins)),
		Hrefs:   append([]string(nil), p.Hrefs...),
	}
	for role, values := range p.Colors {
		out.Colors[role] = append([]string(nil), values...)
	}
	for side, n := range p.Margins {
		out.Margins[side] = n
	}
	return out
}
