package projector

import (
	"fmt"

	"golang.org/x/text/language"
)

// Projector derives the displayed subset and order of a catalog snapshot.
// It keeps no state between calls besides its collation locale.
type Projector struct {
	tag language.Tag
}

// New creates a Projector that collates names according to tag.
func New(tag language.Tag) *Projector {
	return &Projector{tag: tag}
}

// ParseLocale parses a BCP 47 tag such as "vi" or "en-US".
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("projector.ParseLocale %q: %w", s, err)
	}
	return tag, nil
}

// Locale returns the collation locale.
func (p *Projector) Locale() language.Tag {
	return p.tag
}
