package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
)

// ErrDoesNotFit is returned by CheckFit for bodies too large for the viewport
var ErrDoesNotFit = errors.New("body does not fit viewport")

// Contact reports the boundary sides hit during one resolution pass
type Contact struct {
	Left, Right, Top, Bottom bool

	// OnGround is true when the body ends the pass touching the floor
	OnGround bool
	// Resting is OnGround with |vy| at or below the rest threshold; ground drag was applied
	Resting bool

	// Impact is the pre-bounce velocity of the first collision per axis
	Impact core.XYPair
}

// Any reports whether any side was hit
func (c Contact) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom
}

// ImpactSpeed returns the magnitude of the pre-bounce velocity
func (c Contact) ImpactSpeed() float64 {
	return mgl64.Vec2{c.Impact.X, c.Impact.Y}.Len()
}

// OnFloor is the floor-contact predicate shared by boundary resolution and entity logic
func OnFloor(position, size core.XYPair, viewport core.ViewportSize) bool {
	return position.Y+size.Y >= float64(viewport.Height)-parameter.FloorEpsilon
}

// CheckFit rejects bodies that cannot satisfy both vertical clamps at once
// The top rule holds y at or above size.Y and the floor holds y at or below H-size.Y,
// so a body fits only when 2*size.Y <= H and size.X <= W
func CheckFit(size core.XYPair, viewport core.ViewportSize) error {
	if size.X > float64(viewport.Width) || 2*size.Y > float64(viewport.Height) {
		return fmt.Errorf("%w: %vx%v body in %dx%d viewport", ErrDoesNotFit, size.X, size.Y, viewport.Width, viewport.Height)
	}
	return nil
}

// ResolveBounds clamps the body inside the viewport and reflects velocity on contact
// Axes are checked in order left, right, top, bottom; each hit consumes bounciness independently
func ResolveBounds(s *core.EntityState, size core.XYPair, bounciness float64, viewport core.ViewportSize, cfg Config) Contact {
	var c Contact
	w := float64(viewport.Width)
	h := float64(viewport.Height)

	if s.Position.X <= 0 {
		s.Position.X = 0
		c.Left = true
		c.Impact.X = s.Velocity.X
		s.Velocity.X = -s.Velocity.X * bounciness
	}
	if s.Position.X+size.X > w {
		s.Position.X = w - size.X
		if !c.Left {
			c.Impact.X = s.Velocity.X
		}
		c.Right = true
		s.Velocity.X = -s.Velocity.X * bounciness
	}

	// Top edge check measures against size, mirroring the floor clamp
	if s.Position.Y-size.Y < 0 {
		s.Position.Y = size.Y
		c.Top = true
		c.Impact.Y = s.Velocity.Y
		s.Velocity.Y = -s.Velocity.Y * bounciness
	}
	if s.Position.Y+size.Y > h {
		s.Position.Y = h - size.Y
		if !c.Top {
			c.Impact.Y = s.Velocity.Y
		}
		c.Bottom = true
		s.Velocity.Y = -s.Velocity.Y * bounciness
	}

	c.OnGround = OnFloor(s.Position, size, viewport)
	if c.OnGround && math.Abs(s.Velocity.Y) <= cfg.RestVelocityThreshold {
		s.Velocity.X -= s.Velocity.X * cfg.GroundDragFactor
		c.Resting = true
	}

	return c
}
