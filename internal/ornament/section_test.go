package ornament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsOrder(t *testing.T) {
	// both surfaces iterate this exact order
	expected := []Section{
		SectionFullscreen, SectionWelcome, SectionTimeline, SectionEvent,
		SectionGift, SectionGallery, SectionRSVP, SectionGuestbook,
		SectionThankyou, SectionFooter,
	}
	assert.Equal(t, expected, Sections)
}

func TestNormalizeSection(t *testing.T) {
	s, err := NormalizeSection("welcome")
	require.NoError(t, err)
	assert.Equal(t, SectionWelcome, s)

	// kebab aliases from older saved themes map onto the canonical ids
	s, err = NormalizeSection("fullscreen-image")
	require.NoError(t, err)
	assert.Equal(t, SectionFullscreen, s)

	s, err = NormalizeSection("thank-you")
	require.NoError(t, err)
	assert.Equal(t, SectionThankyou, s)

	s, err = NormalizeSection("  Gallery ")
	require.NoError(t, err)
	assert.Equal(t, SectionGallery, s)

	_, err = NormalizeSection("sidebar")
	assert.Error(t, err)

	_, err = NormalizeSection("")
	assert.Error(t, err)
}

func TestFilterBySectionStableOrder(t *testing.T) {
	now := fixedNow(t)
	a := NewDefault(SectionWelcome, "a", "/a.png", now)
	a.ID = "a"
	b := NewDefault(SectionGallery, "b", "/b.png", now)
	b.ID = "b"
	c := NewDefault(SectionWelcome, "c", "/c.png", now)
	c.ID = "c"

	all := []Ornament{a, b, c}
	welcome := FilterBySection(all, SectionWelcome)
	require.Len(t, welcome, 2)
	assert.Equal(t, "a", welcome[0].ID)
	assert.Equal(t, "c", welcome[1].ID)
}

func TestFilterBySectionEmpty(t *testing.T) {
	assert.Empty(t, FilterBySection(nil, SectionGift))
	assert.Empty(t, FilterBySection([]Ornament{}, SectionGift))

	now := fixedNow(t)
	all := []Ornament{NewDefault(SectionWelcome, "a", "/a.png", now)}
	assert.Empty(t, FilterBySection(all, SectionGift))
}

func TestVisibleInSectionDropsHidden(t *testing.T) {
	now := fixedNow(t)
	shown := NewDefault(SectionEvent, "shown", "/s.png", now)
	shown.ID = "shown"
	hidden := NewDefault(SectionEvent, "hidden", "/h.png", now)
	hidden.ID = "hidden"
	hidden.IsVisible = false

	all := []Ornament{shown, hidden}

	visible := VisibleInSection(all, SectionEvent)
	require.Len(t, visible, 1)
	assert.Equal(t, "shown", visible[0].ID)

	// the editor filter still lists hidden records
	assert.Len(t, FilterBySection(all, SectionEvent), 2)
}

func TestNormalizeCollection(t *testing.T) {
	now := fixedNow(t)
	a := NewDefault(SectionWelcome, "a", "/a.png", now)
	a.Section = "fullscreen-image"
	b := NewDefault(SectionGallery, "b", "/b.png", now)

	ornaments := []Ornament{a, b}
	require.NoError(t, Normalize(ornaments))
	assert.Equal(t, SectionFullscreen, ornaments[0].Section)
	assert.Equal(t, SectionGallery, ornaments[1].Section)

	bad := []Ornament{{ID: "x", Section: "sidebar"}}
	assert.Error(t, Normalize(bad))
}
