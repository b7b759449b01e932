package physics

import "github.com/lixenwraith/bouncer/core"

// ShapeKind tags the CollisionShape variant
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
)

// CollisionShape describes an entity's extent for boundary checks
type CollisionShape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle
}

// Circle returns a circular shape
func Circle(radius float64) CollisionShape {
	return CollisionShape{Kind: ShapeCircle, Radius: radius}
}

// EffectiveSize returns the axis-aligned bounding extent
func (s CollisionShape) EffectiveSize() core.XYPair {
	switch s.Kind {
	case ShapeCircle:
		d := 2 * s.Radius
		return core.XYPair{X: d, Y: d}
	}
	return core.XYPair{}
}
