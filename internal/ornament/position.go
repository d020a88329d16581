package ornament

import (
	"strconv"
	"strings"
)

type AnchorX string
type AnchorY string

const (
	AnchorLeft  AnchorX = "left"
	AnchorRight AnchorX = "right"

	AnchorTop    AnchorY = "top"
	AnchorBottom AnchorY = "bottom"
)

// Position anchors an ornament to one corner of its section. Per axis, only
// the offset selected by the anchor is meaningful; the other one may hold a
// stale value and must be ignored by the resolver, not just left unset.
type Position struct {
	Top     *string `json:"top"`
	Left    *string `json:"left"`
	Right   *string `json:"right"`
	Bottom  *string `json:"bottom"`
	AnchorY AnchorY `json:"anchorY"`
	AnchorX AnchorX `json:"anchorX"`
}

// Transform is the inner layer applied on top of the resolved position. Scale
// and rotate compose around the ornament's own center, so they never move the
// anchor point computed by Resolve.
type Transform struct {
	Scale  float64 `json:"scale"`
	Rotate float64 `json:"rotate"`
}

// Resolve returns the absolute-position style directives for p: exactly one
// horizontal key (left or right) and one vertical key (top or bottom), chosen
// by the anchors. Offsets stored under the non-selected keys are never
// emitted, which keeps conflicting offsets from both edges out of the output.
// A nil selected offset emits nothing for that axis.
func (p Position) Resolve() map[string]string {
	out := make(map[string]string, 2)

	switch p.AnchorX {
	case AnchorRight:
		if p.Right != nil {
			out["right"] = *p.Right
		}
	default:
		if p.Left != nil {
			out["left"] = *p.Left
		}
	}

	switch p.AnchorY {
	case AnchorBottom:
		if p.Bottom != nil {
			out["bottom"] = *p.Bottom
		}
	default:
		if p.Top != nil {
			out["top"] = *p.Top
		}
	}

	return out
}

// selectedX and selectedY point at the offset field the anchors select on
// each axis.
func (p *Position) selectedX() **string {
	if p.AnchorX == AnchorRight {
		return &p.Right
	}
	return &p.Left
}

func (p *Position) selectedY() **string {
	if p.AnchorY == AnchorBottom {
		return &p.Bottom
	}
	return &p.Top
}

// Compose returns the combined CSS transform for t. Values outside the
// editor's clamp range pass through unchanged; the result is visually odd but
// never an error.
func (t Transform) Compose() string {
	return "scale(" + formatFloat(t.Scale) + ") rotate(" + formatFloat(t.Rotate) + "deg)"
}

// Origin is the fixed transform origin. Keeping it at the ornament's center is
// what makes Compose independent of Resolve: scaling or rotating an
// absolutely-positioned element around its center leaves the anchor in place.
func (t Transform) Origin() string {
	return "center center"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// shiftPercent adds delta to a percentage-string offset, clamping the result
// to maxPct. Non-percentage or unparseable values are returned unchanged.
func shiftPercent(value string, delta, maxPct float64) string {
	trimmed := strings.TrimSuffix(value, "%")
	if trimmed == value {
		return value
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return value
	}
	n += delta
	if n > maxPct {
		n = maxPct
	}
	return formatFloat(n) + "%"
}
