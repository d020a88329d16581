package ornament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmitsOnlyAnchoredOffsets(t *testing.T) {
	// stale values sit on the non-anchored side; they must never be emitted
	p := Position{
		Top:     pct("10%"),
		Bottom:  pct("40%"),
		Left:    pct("20%"),
		Right:   pct("5%"),
		AnchorY: AnchorTop,
		AnchorX: AnchorLeft,
	}

	style := p.Resolve()
	assert.Equal(t, "10%", style["top"])
	assert.Equal(t, "20%", style["left"])
	assert.NotContains(t, style, "bottom")
	assert.NotContains(t, style, "right")
}

func TestResolveBottomRightAnchors(t *testing.T) {
	p := Position{
		Top:     pct("10%"),
		Bottom:  pct("15%"),
		Left:    pct("20%"),
		Right:   pct("25%"),
		AnchorY: AnchorBottom,
		AnchorX: AnchorRight,
	}

	style := p.Resolve()
	assert.Equal(t, "15%", style["bottom"])
	assert.Equal(t, "25%", style["right"])
	assert.NotContains(t, style, "top")
	assert.NotContains(t, style, "left")
}

func TestResolveNilSelectedOffsetEmitsNothing(t *testing.T) {
	// anchored to the right but no right value stored: the axis falls back to
	// the browser default rather than erroring or borrowing the left value
	p := Position{
		Left:    pct("20%"),
		AnchorY: AnchorTop,
		AnchorX: AnchorRight,
	}

	style := p.Resolve()
	assert.NotContains(t, style, "right")
	assert.NotContains(t, style, "left")
	assert.Empty(t, style)
}

func TestResolveUnknownAnchorFallsBackToTopLeft(t *testing.T) {
	p := Position{
		Top:     pct("10%"),
		Left:    pct("20%"),
		AnchorY: "middle",
		AnchorX: "center",
	}

	style := p.Resolve()
	assert.Equal(t, "10%", style["top"])
	assert.Equal(t, "20%", style["left"])
}

func TestTransformIndependentOfPosition(t *testing.T) {
	p := Position{
		Top:     pct("10%"),
		Left:    pct("20%"),
		AnchorY: AnchorTop,
		AnchorX: AnchorLeft,
	}

	identity := p.Resolve()
	// applying any scale/rotate must not shift the anchor point
	for _, tr := range []Transform{
		{Scale: 1, Rotate: 0},
		{Scale: 2.5, Rotate: 45},
		{Scale: 0.1, Rotate: -720},
	} {
		assert.Equal(t, identity, p.Resolve())
		assert.Equal(t, "center center", tr.Origin())
	}
}

func TestTransformCompose(t *testing.T) {
	assert.Equal(t, "scale(1) rotate(0deg)", Transform{Scale: 1, Rotate: 0}.Compose())
	assert.Equal(t, "scale(1.5) rotate(-30deg)", Transform{Scale: 1.5, Rotate: -30}.Compose())
	// out-of-range values pass through without clamping or error
	assert.Equal(t, "scale(99) rotate(3600deg)", Transform{Scale: 99, Rotate: 3600}.Compose())
}

func TestShiftPercent(t *testing.T) {
	assert.Equal(t, "15%", shiftPercent("10%", 5, 90))
	assert.Equal(t, "90%", shiftPercent("85%", 5, 90))
	assert.Equal(t, "90%", shiftPercent("88%", 5, 90))
	// non-percentage values are left alone
	assert.Equal(t, "120px", shiftPercent("120px", 5, 90))
	assert.Equal(t, "not-a-number%", shiftPercent("not-a-number%", 5, 90))
}

func TestPositionRoundTripJSON(t *testing.T) {
	p := Position{
		Top:     pct("10%"),
		Left:    pct("20%"),
		AnchorY: AnchorTop,
		AnchorX: AnchorLeft,
	}

	o := NewDefault(SectionWelcome, "leaf", "/leaf.png", fixedNow(t))
	o.Position = p

	decoded := encodeDecode(t, o)
	require.NotNil(t, decoded.Position.Top)
	assert.Equal(t, "10%", *decoded.Position.Top)
	assert.Equal(t, AnchorLeft, decoded.Position.AnchorX)
	assert.Nil(t, decoded.Position.Bottom)
}
