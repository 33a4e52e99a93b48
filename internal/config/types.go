package config

import (
	"github.com/alexisbeaulieu97/termtint/pkg/palette"
)

// Config represents a palette overlay document. Every family listed under
// colors adds to or replaces shades of the built-in palette.
type Config struct {
	Colors map[string]ColorFamily `yaml:"colors" validate:"required,min=1,dive,keys,family,endkeys,dive,keys,gt=0,endkeys,required,hexcolor"`
}

// ColorFamily maps shade numbers to hex color values.
type ColorFamily map[int]string

// Overlay flattens the document into palette entries keyed the way the
// palette stores them.
func (c *Config) Overlay() map[string]string {
	entries := make(map[string]string)
	for name, family := range c.Colors {
		for shade, value := range family {
			entries[palette.Key(name, shade)] = value
		}
	}
	return entries
}
