package ornament

import (
	"strconv"
	"time"
)

// Ornament is a decorative image placed on one section of an invitation page.
// The whole collection for a theme is serialized as JSON and replaced wholesale
// on save; ids are assigned client-style at creation time and never reused.
type Ornament struct {
	ID        string     `json:"id"`
	Section   Section    `json:"section"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	Position  Position   `json:"position"`
	Transform Transform  `json:"transform"`
	Style     Style      `json:"style"`
	IsVisible bool       `json:"isVisible"`
	Animation *Animation `json:"animation,omitempty"`
	CreatedAt string     `json:"createdAt"`
}

// Style holds the presentational attributes that are not part of the
// position/transform layers. Out-of-range opacity or zIndex values are kept
// as-is; rendering tolerates them.
type Style struct {
	Width   string  `json:"width"`
	Height  string  `json:"height,omitempty"`
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"zIndex"`
}

// LibraryEntry is a reusable artwork template. It is parsed and validated once
// at the library-fetch boundary; everything past that point works with this
// concrete type.
type LibraryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"ornament_name"`
	Image    string `json:"ornament_image"`
	Category string `json:"category"`
}

// NewID returns a fresh timestamp-based ornament id.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func pct(s string) *string { return &s }

// NewDefault constructs an ornament with the default placement used when an
// image is uploaded directly: top-left corner at 10%/10%, unscaled, unrotated,
// 150px wide, fully opaque, mid-stack zIndex.
func NewDefault(section Section, name, image string, now time.Time) Ornament {
	return Ornament{
		ID:      NewID(now),
		Section: section,
		Name:    name,
		Image:   image,
		Position: Position{
			Top:     pct("10%"),
			Left:    pct("10%"),
			AnchorY: AnchorTop,
			AnchorX: AnchorLeft,
		},
		Transform: Transform{Scale: 1, Rotate: 0},
		Style:     Style{Width: "150px", Opacity: 1, ZIndex: 15},
		IsVisible: true,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// FromLibrary stamps a new ornament out of a library template. The new record
// gets a fresh id distinct from the library entry's id and owns its image
// reference from here on.
func FromLibrary(entry LibraryEntry, section Section, now time.Time) Ornament {
	return NewDefault(section, entry.Name, entry.Image, now)
}
