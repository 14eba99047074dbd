package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by every validation failure
var ErrInvalidScene = errors.New("invalid scene")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a scene file on top of the defaults. A missing file yields the
// default scene.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON scene document on top of the defaults and
// validates the result
func Parse(data []byte) (*Scene, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate rejects scenes the visibility solver must never see: empty or
// inverted rectangles, non-finite coordinates and unknown colours
func (s *Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	for i, l := range s.Lights {
		if !finite(l.X, l.Y) {
			return fmt.Errorf("%w: light %d has a non-finite position", ErrInvalidScene, i)
		}
		if l.Color != "" {
			if _, err := ParseColor(l.Color); err != nil {
				return fmt.Errorf("%w: light %d: %v", ErrInvalidScene, i, err)
			}
		}
	}

	for i, r := range s.Occluders {
		if !finite(r.X, r.Y, r.Width, r.Height) {
			return fmt.Errorf("%w: occluder %d has non-finite geometry", ErrInvalidScene, i)
		}
	}

	if s.Grid != nil && !finite(s.Grid.TileSize, s.Grid.OffsetX, s.Grid.OffsetY) {
		return fmt.Errorf("%w: grid has non-finite geometry", ErrInvalidScene)
	}

	if _, err := s.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
