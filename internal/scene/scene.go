// Package scene describes the occluders and lights the raytracer works on.
// Scenes are loaded from YAML (or JSON) files on top of a built-in default so
// a file only needs to say what it changes.
package scene

import (
	"image/color"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

// Scene holds everything needed to build one frame's geometry
type Scene struct {
	// View size in pixels; also the size of the bounding occluder
	Width  int `yaml:"width" json:"width" validate:"gt=0"`
	Height int `yaml:"height" json:"height" validate:"gt=0"`

	// Bounds adds an undrawn occluder covering the whole view so every ray
	// has something to stop on
	Bounds bool `yaml:"bounds" json:"bounds"`

	// Colours: a CSS/SVG name ("teal") or hex "RRGGBB" / "RRGGBBAA"
	Background    string `yaml:"background" json:"background"`
	OccluderColor string `yaml:"occluder_color" json:"occluder_color"`
	LightColor    string `yaml:"light_color" json:"light_color"`

	Lights    []Light `yaml:"lights" json:"lights" validate:"dive"`
	Occluders []Rect  `yaml:"occluders" json:"occluders" validate:"dive"`

	// Grid optionally adds occluders from an ASCII tile map
	Grid *Grid `yaml:"grid,omitempty" json:"grid,omitempty"`
}

// Light is a light's starting position. Color overrides the scene's
// LightColor when set.
type Light struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Color string  `yaml:"color,omitempty" json:"color,omitempty"`
}

// Rect is an occluder as written in a scene file
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width" validate:"gt=0"`
	Height float64 `yaml:"height" json:"height" validate:"gt=0"`
}

// Grid is a tile map where '#' cells block light
type Grid struct {
	TileSize float64  `yaml:"tile_size" json:"tile_size" validate:"gt=0"`
	OffsetX  float64  `yaml:"offset_x" json:"offset_x"`
	OffsetY  float64  `yaml:"offset_y" json:"offset_y"`
	Rows     []string `yaml:"rows" json:"rows" validate:"min=1"`
}

// Default returns the original demo scene: a 750x750 room with three blocks
// and one light
func Default() *Scene {
	return &Scene{
		Width:         750,
		Height:        750,
		Bounds:        true,
		Background:    "black",
		OccluderColor: "teal",
		LightColor:    "ffffff33",
		Lights: []Light{
			{X: 485, Y: 485},
		},
		Occluders: []Rect{
			{X: 30, Y: 30, Width: 80, Height: 80},
			{X: 400, Y: 80, Width: 60, Height: 120},
			{X: 300, Y: 550, Width: 350, Height: 50},
		},
	}
}

// Rects returns the drawable occluders: the explicit ones followed by those
// derived from the grid. The bounding occluder is not included.
func (s *Scene) Rects() []shadows.Rect {
	rects := make([]shadows.Rect, 0, len(s.Occluders))
	for _, r := range s.Occluders {
		rects = append(rects, shadows.NewRect(r.X, r.Y, r.Width, r.Height))
	}

	if s.Grid != nil {
		rects = append(rects, OccludersFromGrid(s.Grid.Rows, s.Grid.TileSize, s.Grid.OffsetX, s.Grid.OffsetY)...)
	}

	return rects
}

// BoundingRect is the undrawn occluder covering the whole view
func (s *Scene) BoundingRect() shadows.Rect {
	return shadows.NewRect(0, 0, float64(s.Width), float64(s.Height))
}

// Occluders returns everything that blocks light, bounding occluder first
func (s *Scene) Occluders() []shadows.Occluder {
	rects := s.Rects()

	occluders := make([]shadows.Occluder, 0, len(rects)+1)
	if s.Bounds {
		occluders = append(occluders, s.BoundingRect())
	}
	for _, r := range rects {
		occluders = append(occluders, r)
	}

	return occluders
}

// Palette is the scene's colours, resolved
type Palette struct {
	Background color.NRGBA
	Occluder   color.NRGBA
	Light      color.NRGBA
}

// Palette resolves the scene's colour strings. Validate has already
// rejected unparseable ones, so errors here only come from unvalidated scenes.
func (s *Scene) Palette() (Palette, error) {
	var (
		p   Palette
		err error
	)

	if p.Background, err = ParseColor(s.Background); err != nil {
		return Palette{}, err
	}
	if p.Occluder, err = ParseColor(s.OccluderColor); err != nil {
		return Palette{}, err
	}
	if p.Light, err = ParseColor(s.LightColor); err != nil {
		return Palette{}, err
	}

	return p, nil
}

// LightColorAt returns the colour for the i-th light, falling back to the
// scene's light colour
func (s *Scene) LightColorAt(i int) (color.NRGBA, error) {
	if i >= 0 && i < len(s.Lights) && s.Lights[i].Color != "" {
		return ParseColor(s.Lights[i].Color)
	}
	return ParseColor(s.LightColor)
}
