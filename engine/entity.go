package engine

import (
	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/physics"
)

// Entity is any object simulated by the engine
// Concrete kinds embed core.EntityState, which supplies State
type Entity interface {
	// State returns the mutable block the engine integrates each frame
	State() *core.EntityState

	// WeightFactor scales gravity; higher values fall faster
	WeightFactor() float64

	// Bounciness returns the entity's restitution; false selects the configured default
	Bounciness() (float64, bool)

	Shape() physics.CollisionShape

	// Draw returns the sprite anchored at the entity position
	Draw() core.Raster

	// HandleInput may change velocity in response to held keys, never position
	HandleInput(keys input.KeySet)
}

// ContactHandler is called synchronously after boundary resolution hit at least one side
type ContactHandler func(e Entity, c physics.Contact)
