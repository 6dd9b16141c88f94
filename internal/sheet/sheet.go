// Package sheet implements the drag-and-snap engine for the bottom sheet on
// the nearby-mosques screen. The sheet travels between three rest offsets
// (expanded, half, collapsed) measured from the top of its travel range; a
// release either flicks one step in the direction of a fast swipe or settles
// on the nearest rest position.
package sheet

import "math"

// Position identifies one of the three rest positions.
type Position int

const (
	Max Position = iota // fully expanded
	Mid                 // partially expanded
	Min                 // collapsed
)

func (p Position) String() string {
	switch p {
	case Max:
		return "max"
	case Mid:
		return "mid"
	case Min:
		return "min"
	}
	return "unknown"
}

// Offsets holds the resting offsets. Offsets grow downward, so numerically
// Max < Mid < Min.
type Offsets struct {
	Max float64 `json:"max"`
	Mid float64 `json:"mid"`
	Min float64 `json:"min"`
}

// DefaultOffsets matches the travel range the mobile shell lays out on a
// typical portrait screen, in density-independent pixels.
var DefaultOffsets = Offsets{Max: 80, Mid: 360, Min: 640}

// DefaultFlickVelocity is the release speed (units/second) beyond which a
// swipe overrides proximity in the snap decision.
const DefaultFlickVelocity = 800.0

// Of returns the offset of a rest position.
func (o Offsets) Of(p Position) float64 {
	switch p {
	case Max:
		return o.Max
	case Mid:
		return o.Mid
	}
	return o.Min
}

func (o Offsets) Valid() bool {
	return o.Max < o.Mid && o.Mid < o.Min
}

// Animator receives the settle command after a release. The animation runs
// asynchronously on the device; the controller does not wait for it.
type Animator interface {
	AnimateTo(target float64)
}

// Controller tracks one vertical drag at a time. All state lives in the
// controller instance; callers serialize access (one gesture stream per
// screen session).
type Controller struct {
	offsets  Offsets
	flick    float64
	animator Animator

	offset   float64
	origin   float64
	dragging bool
	resting  Position
	expanded bool
}

// NewController starts the sheet collapsed. A nil animator commits settle
// targets synchronously, which is what the tests use.
func NewController(offsets Offsets, flickVelocity float64, animator Animator) *Controller {
	return &Controller{
		offsets:  offsets,
		flick:    flickVelocity,
		animator: animator,
		offset:   offsets.Min,
		resting:  Min,
	}
}

func (c *Controller) Offset() float64   { return c.offset }
func (c *Controller) Resting() Position { return c.resting }
func (c *Controller) Expanded() bool    { return c.expanded }
func (c *Controller) Dragging() bool    { return c.dragging }
func (c *Controller) Offsets() Offsets  { return c.offsets }

// StartDrag records the live offset as the drag origin. Starting a drag
// mid-settle picks up the animation's current value, so a new gesture
// smoothly interrupts an ongoing settle.
func (c *Controller) StartDrag() {
	c.origin = c.offset
	c.dragging = true
}

// Drag applies the cumulative translation since StartDrag and returns the
// new offset. The clamp runs on every update so the sheet never overshoots
// its travel bounds while the finger is down.
func (c *Controller) Drag(translation float64) float64 {
	if !c.dragging {
		return c.offset
	}
	c.offset = c.clamp(c.origin + translation)
	return c.offset
}

// EndDrag picks the target rest position from the release velocity (negative
// is upward), commits the logical state immediately and hands the animated
// settle to the animator.
func (c *Controller) EndDrag(velocity float64) Position {
	if !c.dragging {
		return c.resting
	}
	target := c.snapTarget(velocity)
	c.dragging = false
	c.resting = target
	c.expanded = target == Max

	if c.animator != nil {
		c.animator.AnimateTo(c.offsets.Of(target))
	} else {
		c.offset = c.offsets.Of(target)
	}
	return target
}

// SetAnimatedOffset feeds a per-frame value from the settle animation back
// into the controller so the live offset is always current. Ignored while a
// drag is active.
func (c *Controller) SetAnimatedOffset(v float64) {
	if c.dragging {
		return
	}
	c.offset = c.clamp(v)
}

// snapTarget is the two-tier snap decision: a fast flick moves one step from
// the anchor in the swipe direction, anything slower settles on the nearest
// rest position. The flick always wins regardless of proximity.
func (c *Controller) snapTarget(velocity float64) Position {
	anchor := c.nearest()
	switch {
	case velocity <= -c.flick:
		if anchor != Max {
			anchor--
		}
	case velocity >= c.flick:
		if anchor != Min {
			anchor++
		}
	}
	return anchor
}

// nearest returns the rest position with the minimum absolute distance to
// the current offset. Exact ties resolve toward the more expanded position:
// Max over Mid over Min.
func (c *Controller) nearest() Position {
	best := Max
	bestDist := math.Abs(c.offset - c.offsets.Max)
	for _, p := range []Position{Mid, Min} {
		if d := math.Abs(c.offset - c.offsets.Of(p)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (c *Controller) clamp(v float64) float64 {
	if v < c.offsets.Max {
		return c.offsets.Max
	}
	if v > c.offsets.Min {
		return c.offsets.Min
	}
	return v
}

// ListOpacity derives the venue-list opacity from the current offset, a
// piecewise-linear ramp over the control points Min->0, Mid->0.5, Max->1,
// clamped outside the outer points.
func (c *Controller) ListOpacity() float64 {
	o := c.offsets
	v := c.offset
	switch {
	case v >= o.Min:
		return 0
	case v <= o.Max:
		return 1
	case v > o.Mid:
		return 0.5 * (o.Min - v) / (o.Min - o.Mid)
	default:
		return 0.5 + 0.5*(o.Mid-v)/(o.Mid-o.Max)
	}
}
