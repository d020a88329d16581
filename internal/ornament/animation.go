package ornament

type AnimationType string
type AnimationSpeed string
type EntranceType string

const (
	AnimationNone   AnimationType = "none"
	AnimationSway   AnimationType = "sway"
	AnimationFloat  AnimationType = "float"
	AnimationPulse  AnimationType = "pulse"
	AnimationRotate AnimationType = "rotate"
	AnimationBounce AnimationType = "bounce"

	SpeedSlow   AnimationSpeed = "slow"
	SpeedNormal AnimationSpeed = "normal"
	SpeedFast   AnimationSpeed = "fast"

	EntranceNone      EntranceType = "none"
	EntranceFade      EntranceType = "fade"
	EntranceSlideUp   EntranceType = "slide-up"
	EntranceSlideDown EntranceType = "slide-down"
	EntranceZoom      EntranceType = "zoom"
)

// Base distances/scales the renderer multiplies by intensity.
const (
	swayBaseDistance  = 15.0
	floatBaseDistance = 20.0
	pulseBaseScale    = 1.0
	pulseScaleStep    = 0.2
)

// Animation configures the looping and entrance effects of one ornament. The
// renderer's native animation primitives do the timing; this package only
// derives class names and numeric custom properties from it.
type Animation struct {
	Enabled          bool           `json:"enabled"`
	Type             AnimationType  `json:"type"`
	Speed            AnimationSpeed `json:"speed"`
	Intensity        float64        `json:"intensity"`
	Delay            float64        `json:"delay"`
	EntranceEnabled  bool           `json:"entranceEnabled"`
	Entrance         EntranceType   `json:"entrance"`
	EntranceDuration int            `json:"entranceDuration"`
}

// Render is what the presentation layer consumes for one animated ornament.
type Render struct {
	Classes []string
	Vars    map[string]string
}

// Map derives the presentation classes and custom properties for a. A nil or
// disabled descriptor, or type "none", yields an empty render.
func (a *Animation) Map() Render {
	r := Render{Vars: map[string]string{}}
	if a == nil || !a.Enabled || a.Type == AnimationNone || a.Type == "" {
		return r
	}

	r.Classes = append(r.Classes, "ornament-anim", "ornament-anim-"+string(a.Type))

	switch a.Speed {
	case SpeedSlow, SpeedFast:
		r.Classes = append(r.Classes, "ornament-anim-"+string(a.Speed))
	}

	switch a.Type {
	case AnimationSway:
		r.Vars["--sway-distance"] = formatFloat(swayBaseDistance*a.Intensity) + "px"
	case AnimationFloat:
		r.Vars["--float-distance"] = formatFloat(floatBaseDistance*a.Intensity) + "px"
	case AnimationPulse:
		r.Vars["--pulse-scale"] = formatFloat(pulseBaseScale + pulseScaleStep*a.Intensity)
	}

	if a.Delay > 0 {
		r.Vars["--anim-delay"] = formatFloat(a.Delay) + "s"
	}

	if a.EntranceEnabled && a.Entrance != EntranceNone && a.Entrance != "" {
		r.Classes = append(r.Classes, "ornament-entrance-"+string(a.Entrance))
		if a.EntranceDuration > 0 {
			r.Vars["--entrance-duration"] = formatInt(a.EntranceDuration) + "ms"
		}
	}

	return r
}

// EntranceTracker decides when an entrance animation must replay. The effect
// fires once per re-entry into the viewport, so the tracker keys off the
// not-visible → visible transition rather than "has ever been visible", and
// bumps a replay key so the renderer restarts the animation instead of
// no-opping on an unchanged key.
type EntranceTracker struct {
	visible   bool
	replayKey int
}

// Observe records the current intersection state and returns the replay key.
// The key increments exactly once per transition into view.
func (t *EntranceTracker) Observe(visible bool) int {
	if visible && !t.visible {
		t.replayKey++
	}
	t.visible = visible
	return t.replayKey
}

// Key returns the current replay key without recording an observation.
func (t *EntranceTracker) Key() int { return t.replayKey }

func formatInt(n int) string {
	return formatFloat(float64(n))
}
