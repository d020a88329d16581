package ornament

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2026-08-30T12:00:00Z")
	require.NoError(t, err)
	return now
}

func encodeDecode(t *testing.T, o Ornament) Ornament {
	t.Helper()
	raw, err := json.Marshal(o)
	require.NoError(t, err)
	var decoded Ornament
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestNewDefaultPlacement(t *testing.T) {
	now := fixedNow(t)
	o := NewDefault(SectionWelcome, "rose", "/rose.png", now)

	assert.Equal(t, NewID(now), o.ID)
	assert.Equal(t, SectionWelcome, o.Section)
	require.NotNil(t, o.Position.Top)
	require.NotNil(t, o.Position.Left)
	assert.Equal(t, "10%", *o.Position.Top)
	assert.Equal(t, "10%", *o.Position.Left)
	assert.Equal(t, AnchorTop, o.Position.AnchorY)
	assert.Equal(t, AnchorLeft, o.Position.AnchorX)
	assert.Equal(t, Transform{Scale: 1, Rotate: 0}, o.Transform)
	assert.Equal(t, Style{Width: "150px", Opacity: 1, ZIndex: 15}, o.Style)
	assert.True(t, o.IsVisible)
	assert.Equal(t, "2026-08-30T12:00:00Z", o.CreatedAt)
}

func TestFromLibraryStampsFreshRecord(t *testing.T) {
	entry := LibraryEntry{
		ID:       "lib-42",
		Name:     "flower",
		Image:    "/x.png",
		Category: "flowers",
	}

	o := FromLibrary(entry, SectionGallery, fixedNow(t))
	assert.Equal(t, "flower", o.Name)
	assert.Equal(t, "/x.png", o.Image)
	assert.Equal(t, SectionGallery, o.Section)
	assert.NotEqual(t, entry.ID, o.ID)
}

func TestOrnamentJSONRoundTrip(t *testing.T) {
	o := NewDefault(SectionRSVP, "dove", "/dove.png", fixedNow(t))
	o.Animation = &Animation{
		Enabled:   true,
		Type:      AnimationSway,
		Speed:     SpeedSlow,
		Intensity: 1.5,
		Delay:     0.3,
	}

	decoded := encodeDecode(t, o)
	assert.Equal(t, o.ID, decoded.ID)
	assert.Equal(t, o.Section, decoded.Section)
	assert.Equal(t, o.Style, decoded.Style)
	require.NotNil(t, decoded.Animation)
	assert.Equal(t, AnimationSway, decoded.Animation.Type)
	assert.Equal(t, 1.5, decoded.Animation.Intensity)
}

func TestOrnamentWithoutAnimationOmitsField(t *testing.T) {
	o := NewDefault(SectionFooter, "ivy", "/ivy.png", fixedNow(t))
	raw, err := json.Marshal(o)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\"animation\"")
}
