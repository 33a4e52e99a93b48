// Package palette maps symbolic color names with numbered shade variants to
// concrete color values. Lookups go through an immutable table keyed by
// uppercased "NAME_SHADE" strings; the built-in table covers the full set of
// Tailwind-style families and can be overlaid with user entries.
package palette

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/termtint/pkg/errors"
)

// Palette is an immutable table of color variants keyed by uppercased
// "NAME_SHADE" strings. The zero value is an empty palette.
type Palette struct {
	entries map[string]string
}

// Variant pairs a shade number with its color value.
type Variant struct {
	Shade int
	Value string
}

// Key returns the table key for a color name and shade.
func Key(name string, shade int) string {
	return strings.ToUpper(name) + "_" + strconv.Itoa(shade)
}

// New builds a palette from entries. Keys are normalized to upper case and
// the input map is copied, never retained.
func New(entries map[string]string) Palette {
	table := make(map[string]string, len(entries))
	for key, value := range entries {
		table[strings.ToUpper(key)] = value
	}
	return Palette{entries: table}
}

// Resolve returns the value registered for name at shade. A shade of zero or
// below bypasses the table entirely and returns name verbatim; the table is
// only consulted for explicitly requested variants.
func (p Palette) Resolve(name string, shade int) (string, error) {
	if shade <= 0 {
		return name, nil
	}

	value, ok := p.entries[Key(name, shade)]
	if !ok {
		return "", errors.NewUnknownColorVariantError(name, shade)
	}
	return value, nil
}

// Lookup fetches the raw table entry for key.
func (p Palette) Lookup(key string) (string, bool) {
	value, ok := p.entries[strings.ToUpper(key)]
	return value, ok
}

// Len reports the number of registered variants.
func (p Palette) Len() int {
	return len(p.entries)
}

// Extend returns a derived palette with entries overlaid on p. The receiver
// is never mutated; overlapping keys take the overlay value.
func (p Palette) Extend(entries map[string]string) Palette {
	merged := make(map[string]string, len(p.entries)+len(entries))
	for key, value := range p.entries {
		merged[key] = value
	}
	for key, value := range entries {
		merged[strings.ToUpper(key)] = value
	}
	return Palette{entries: merged}
}

// Variants lists every shade registered for a family name, ordered by shade.
func (p Palette) Variants(name string) []Variant {
	prefix := strings.ToUpper(name) + "_"

	variants := make([]Variant, 0, shadeCount)
	for key, value := range p.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		shade, err := strconv.Atoi(key[len(prefix):])
		if err != nil {
			continue
		}
		variants = append(variants, Variant{Shade: shade, Value: value})
	}

	sort.Slice(variants, func(i, j int) bool { return variants[i].Shade < variants[j].Shade })
	return variants
}

// Families lists the distinct family names present in the palette, sorted.
func (p Palette) Families() []string {
	seen := make(map[string]struct{})
	for key := range p.entries {
		idx := strings.LastIndex(key, "_")
		if idx <= 0 {
			continue
		}
		seen[strings.ToLower(key[:idx])] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// paletteManager guards the process-wide palette so overlays can be swapped
// in while concurrent chains resolve variants.
type paletteManager struct {
	mu      sync.RWMutex
	current Palette
}

var defaultManager = &paletteManager{current: builtin()}

// Default returns the process-wide palette. Out of the box this is the
// built-in table; SetDefault may replace it with an overlaid copy.
func Default() Palette {
	defaultManager.mu.RLock()
	defer defaultManager.mu.RUnlock()
	return defaultManager.current
}

// SetDefault replaces the process-wide palette. Individual Palette values
// are immutable, so handing one over is safe without copying.
func SetDefault(p Palette) {
	defaultManager.mu.Lock()
	defaultManager.current = p
	defaultManager.mu.Unlock()
}
