package core

// EntityState is the mutable block every simulated object owns
// The engine writes Position and Velocity during the physics phase;
// an entity may only change Velocity from its input handler
type EntityState struct {
	Position XYPair
	Velocity XYPair

	viewport    ViewportSize
	hasViewport bool
}

// NewEntityState creates a state at rest at the given position
func NewEntityState(position XYPair) EntityState {
	return EntityState{Position: position}
}

// State returns the state itself
// Types embedding EntityState satisfy accessor interfaces through this method
func (s *EntityState) State() *EntityState {
	return s
}

// SetViewport stores the viewport context propagated by the engine each frame
func (s *EntityState) SetViewport(v ViewportSize) {
	s.viewport = v
	s.hasViewport = true
}

// Viewport returns the last propagated viewport; false before the first frame
func (s *EntityState) Viewport() (ViewportSize, bool) {
	return s.viewport, s.hasViewport
}
