package lighting

import (
	"image/color"
	"log"

	"github.com/google/uuid"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

// Light is a light source in the scene together with how it is drawn
type Light struct {
	ID     string
	Color  color.NRGBA // Fill colour of the lit polygon
	Radius float64     // Radius of the marker drawn at the light (in pixels)
	Source *shadows.LightSource
}

// Manager handles all light sources in the scene
type Manager struct {
	lights map[string]*Light
	order  []string // insertion order, so drawing is stable
	debug  bool
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		lights: make(map[string]*Light),
	}
}

// SetDebug enables logging of each recomputation
func (m *Manager) SetDebug(enabled bool) {
	m.debug = enabled
}

// AddLight adds a light at pos and returns its ID
func (m *Manager) AddLight(pos shadows.Point, col color.NRGBA, radius float64) string {
	id := uuid.NewString()
	m.lights[id] = &Light{
		ID:     id,
		Color:  col,
		Radius: radius,
		Source: shadows.NewLightSource(pos),
	}
	m.order = append(m.order, id)

	if m.debug {
		log.Printf("DEBUG: Added light %s at (%.1f, %.1f)", id, pos.X, pos.Y)
	}
	return id
}

// RemoveLight removes a light. Unknown IDs are ignored.
func (m *Manager) RemoveLight(id string) {
	if _, ok := m.lights[id]; !ok {
		return
	}
	delete(m.lights, id)

	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// GetLight returns a light by ID
func (m *Manager) GetLight(id string) (*Light, bool) {
	l, ok := m.lights[id]
	return l, ok
}

// MoveLight repositions a light, marking it for recomputation if it moved.
// It reports whether the ID was known.
func (m *Manager) MoveLight(id string, pos shadows.Point) bool {
	l, ok := m.lights[id]
	if !ok {
		return false
	}
	l.Source.SetPosition(pos)
	return true
}

// InvalidateAll marks every light stale. Call it whenever occluders change.
func (m *Manager) InvalidateAll() {
	for _, l := range m.lights {
		l.Source.Invalidate()
	}
}

// Update recomputes the visibility polygon of every stale light and returns
// how many were recomputed
func (m *Manager) Update(occluders []shadows.Occluder) int {
	updated := 0
	for _, id := range m.order {
		l := m.lights[id]
		if l.Source.Update(occluders) {
			updated++
			if m.debug {
				pos := l.Source.Position()
				log.Printf("DEBUG: Light %s at (%.1f, %.1f) sees %d vertices",
					id, pos.X, pos.Y, len(l.Source.VisiblePolygon()))
			}
		}
	}
	return updated
}

// Lights returns all lights in the order they were added
func (m *Manager) Lights() []*Light {
	lights := make([]*Light, 0, len(m.order))
	for _, id := range m.order {
		lights = append(lights, m.lights[id])
	}
	return lights
}

// Count returns the number of lights
func (m *Manager) Count() int {
	return len(m.order)
}

// Clear removes every light (called when loading a new scene)
func (m *Manager) Clear() {
	m.lights = make(map[string]*Light)
	m.order = nil
}
