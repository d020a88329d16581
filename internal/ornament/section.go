package ornament

import (
	"fmt"
	"strings"
)

// Section identifies one named page region of the invitation. The same
// enumeration is shared verbatim between the editor and the live page, so
// section membership is the sole join key between "where edited" and "where
// rendered".
type Section string

const (
	SectionFullscreen Section = "fullscreen"
	SectionWelcome    Section = "welcome"
	SectionTimeline   Section = "timeline"
	SectionEvent      Section = "event"
	SectionGift       Section = "gift"
	SectionGallery    Section = "gallery"
	SectionRSVP       Section = "rsvp"
	SectionGuestbook  Section = "guestbook"
	SectionThankyou   Section = "thankyou"
	SectionFooter     Section = "footer"
)

// Sections lists every section in page order. Both surfaces iterate this
// slice, never their own copy.
var Sections = []Section{
	SectionFullscreen,
	SectionWelcome,
	SectionTimeline,
	SectionEvent,
	SectionGift,
	SectionGallery,
	SectionRSVP,
	SectionGuestbook,
	SectionThankyou,
	SectionFooter,
}

// sectionAliases maps the kebab-case spellings that leaked into older saved
// themes onto the canonical bare ids.
var sectionAliases = map[string]Section{
	"fullscreen-image": SectionFullscreen,
	"welcome-section":  SectionWelcome,
	"thank-you":        SectionThankyou,
}

var sectionSet = func() map[Section]bool {
	m := make(map[Section]bool, len(Sections))
	for _, s := range Sections {
		m[s] = true
	}
	return m
}()

// NormalizeSection maps a raw section id onto the canonical vocabulary. Known
// kebab aliases are rewritten; anything else unknown is an error, so an
// ornament can never be persisted under a spelling the render filter would
// miss.
func NormalizeSection(raw string) (Section, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := sectionAliases[id]; ok {
		return alias, nil
	}
	s := Section(id)
	if sectionSet[s] {
		return s, nil
	}
	return "", fmt.Errorf("unknown section %q", raw)
}

// FilterBySection returns the ornaments belonging to section, preserving
// collection order. Hidden records are included so the editor can still list
// them.
func FilterBySection(ornaments []Ornament, section Section) []Ornament {
	out := []Ornament{}
	for _, o := range ornaments {
		if o.Section == section {
			out = append(out, o)
		}
	}
	return out
}

// VisibleInSection is the live-page variant of FilterBySection: hidden
// ornaments are dropped.
func VisibleInSection(ornaments []Ornament, section Section) []Ornament {
	out := []Ornament{}
	for _, o := range ornaments {
		if o.Section == section && o.IsVisible {
			out = append(out, o)
		}
	}
	return out
}
