// Package scene loads the initial world description from TOML
//
// Example:
//
//	title = "Bouncy Ball"
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[controls]
//	jump = ["space", "k"]
//
//	[[ball]]
//	x = 376
//	y = 276
//	radius = 24
//	color = "#cf5353"
//	weight = 1.2
//	bounciness = 0.8
package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/objects"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
)

// ErrUnknownField is returned for keys the scene format does not define
var ErrUnknownField = errors.New("unknown scene field")

// Viewport is the fixed simulation area in pixels
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Ball is one ball entry; zero Radius and empty Color take the stock values, an omitted weight the stock weight
type Ball struct {
	X          float64  `toml:"x"`
	Y          float64  `toml:"y"`
	Radius     float64  `toml:"radius,omitempty"`
	Color      string   `toml:"color,omitempty"`
	Weight     *float64 `toml:"weight,omitempty"`
	Bounciness *float64 `toml:"bounciness,omitempty"`
}

// Scene is the decoded scene file
type Scene struct {
	Title    string              `toml:"title"`
	Viewport Viewport            `toml:"viewport"`
	Controls map[string][]string `toml:"controls,omitempty"`
	Balls    []Ball              `toml:"ball"`
}

// Default returns the stock scene: one ball near the centre of an 800x600 viewport
func Default() *Scene {
	return &Scene{
		Title: parameter.SceneTitle,
		Viewport: Viewport{
			Width:  parameter.SceneWidth,
			Height: parameter.SceneHeight,
		},
		Controls: input.DefaultBindings().Table(),
		Balls:    []Ball{defaultBall()},
	}
}

func defaultBall() Ball {
	weight := parameter.BallWeightFactor
	return Ball{
		X:      parameter.SceneBallX,
		Y:      parameter.SceneBallY,
		Radius: parameter.BallRadius,
		Color:  parameter.BallColor,
		Weight: &weight,
	}
}

// Load reads and decodes a scene file
func Load(path string) (*Scene, error) {
	var sc Scene
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	sc.fillDefaults()
	return &sc, nil
}

// Decode parses a scene from TOML text
func Decode(data string) (*Scene, error) {
	var sc Scene
	md, err := toml.Decode(data, &sc)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	sc.fillDefaults()
	return &sc, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
}

// fillDefaults substitutes stock values for omitted fields
func (s *Scene) fillDefaults() {
	if s.Title == "" {
		s.Title = parameter.SceneTitle
	}
	if s.Viewport.Width == 0 && s.Viewport.Height == 0 {
		s.Viewport = Viewport{Width: parameter.SceneWidth, Height: parameter.SceneHeight}
	}
	if len(s.Balls) == 0 {
		s.Balls = []Ball{defaultBall()}
	}
	for i := range s.Balls {
		b := &s.Balls[i]
		if b.Radius == 0 {
			b.Radius = parameter.BallRadius
		}
		if b.Color == "" {
			b.Color = parameter.BallColor
		}
	}
}

// Encode writes the scene as TOML
func (s *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// ViewportSize returns the validated viewport
func (s *Scene) ViewportSize() (core.ViewportSize, error) {
	vp := core.ViewportSize{Width: s.Viewport.Width, Height: s.Viewport.Height}
	if !vp.Valid() {
		return vp, fmt.Errorf("%w: %dx%d", core.ErrInvalidViewport, vp.Width, vp.Height)
	}
	return vp, nil
}

// Bindings resolves the controls table over the default bindings
func (s *Scene) Bindings() (input.Bindings, error) {
	return input.ParseBindings(s.Controls)
}

// Build constructs the balls in file order, all sharing bindings
// Balls too large for the viewport are rejected
func (s *Scene) Build(bindings input.Bindings) ([]*objects.Ball, error) {
	vp, err := s.ViewportSize()
	if err != nil {
		return nil, err
	}

	balls := make([]*objects.Ball, 0, len(s.Balls))
	for i, b := range s.Balls {
		ball, err := objects.NewBall(objects.BallConfig{
			Position:   core.XYPair{X: b.X, Y: b.Y},
			Radius:     b.Radius,
			Color:      b.Color,
			Weight:     b.Weight,
			Bounciness: b.Bounciness,
			Controls:   bindings,
		})
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		if err := physics.CheckFit(ball.Shape().EffectiveSize(), vp); err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		balls = append(balls, ball)
	}
	return balls, nil
}
