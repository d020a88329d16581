package ornament

import (
	"fmt"
	"time"
)

const (
	pasteOffsetPct = 5.0
	pasteMaxPct    = 90.0
)

// Collection owns the mutable ornament list for one theme being edited. Every
// mutation goes through it, and the whole list is serialized and persisted on
// save. A single ornament id may be selected at a time; mutations keep the
// selection in the states the property panel expects: adding selects the new
// record, deleting always deselects.
type Collection struct {
	ornaments []Ornament
	selected  string
}

// NewCollection wraps an existing ornament list, e.g. one fetched from the
// backend. The collection takes ownership of the slice.
func NewCollection(ornaments []Ornament) *Collection {
	return &Collection{ornaments: ornaments}
}

// Ornaments returns the backing list in insertion order.
func (c *Collection) Ornaments() []Ornament { return c.ornaments }

// Selected returns the id of the active ornament, or "" when idle.
func (c *Collection) Selected() string { return c.selected }

// Select marks an ornament as active. Selecting an unknown id is a no-op.
func (c *Collection) Select(id string) {
	if _, ok := c.Get(id); ok {
		c.selected = id
	}
}

// Deselect returns the editor to the idle state.
func (c *Collection) Deselect() { c.selected = "" }

// Get returns the ornament with the given id.
func (c *Collection) Get(id string) (Ornament, bool) {
	for _, o := range c.ornaments {
		if o.ID == id {
			return o, true
		}
	}
	return Ornament{}, false
}

// Add appends a freshly-constructed record and selects it.
func (c *Collection) Add(o Ornament) {
	c.ornaments = append(c.ornaments, o)
	c.selected = o.ID
}

// Replace swaps the stored record with the given id for the updated one.
// Property-panel edits are whole-record replacements, not field patches.
func (c *Collection) Replace(updated Ornament) error {
	for i, o := range c.ornaments {
		if o.ID == updated.ID {
			c.ornaments[i] = updated
			return nil
		}
	}
	return fmt.Errorf("ornament %s not found", updated.ID)
}

// Remove deletes the record with the given id and unconditionally returns the
// editor to idle.
func (c *Collection) Remove(id string) {
	kept := c.ornaments[:0]
	for _, o := range c.ornaments {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	c.ornaments = kept
	c.selected = ""
}

// Duplicate clones the ornament with the given id under a fresh id, nudging
// whichever selected offsets are non-null by +5% (clamped to 90%) so the copy
// never lands exactly on top of the original. The clone is appended and
// selected.
func (c *Collection) Duplicate(id string, now time.Time) (Ornament, error) {
	src, ok := c.Get(id)
	if !ok {
		return Ornament{}, fmt.Errorf("ornament %s not found", id)
	}

	clone := src
	clone.ID = NewID(now)
	clone.CreatedAt = now.UTC().Format(time.RFC3339)
	clone.Position = nudge(src.Position)
	if src.Animation != nil {
		anim := *src.Animation
		clone.Animation = &anim
	}

	c.Add(clone)
	return clone, nil
}

func nudge(p Position) Position {
	if sel := p.selectedX(); *sel != nil {
		shifted := shiftPercent(**sel, pasteOffsetPct, pasteMaxPct)
		*sel = &shifted
	}
	if sel := p.selectedY(); *sel != nil {
		shifted := shiftPercent(**sel, pasteOffsetPct, pasteMaxPct)
		*sel = &shifted
	}
	return p
}

// Normalize rewrites every ornament's section id onto the canonical
// vocabulary, failing on the first unknown id. Persisting an invalid section
// would silently hide the ornament from the render filter, so this runs at the
// save boundary rather than by caller convention.
func Normalize(ornaments []Ornament) error {
	for i := range ornaments {
		s, err := NormalizeSection(string(ornaments[i].Section))
		if err != nil {
			return fmt.Errorf("ornament %s: %w", ornaments[i].ID, err)
		}
		ornaments[i].Section = s
	}
	return nil
}
