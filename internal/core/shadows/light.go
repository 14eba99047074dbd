package shadows

// LightSource is a point light that caches its most recent visibility
// polygon. The polygon is only recomputed by Update while the light is
// dirty; moving the light or calling Invalidate marks it dirty.
type LightSource struct {
	pos     Point
	visible []Point
	dirty   bool
}

// NewLightSource creates a light at pos that will compute its polygon on
// the first Update
func NewLightSource(pos Point) *LightSource {
	return &LightSource{pos: pos, dirty: true}
}

// Position returns the light's current position
func (l *LightSource) Position() Point {
	return l.pos
}

// SetPosition moves the light. Moving to a different position marks the
// cached polygon stale.
func (l *LightSource) SetPosition(pos Point) {
	if pos == l.pos {
		return
	}
	l.pos = pos
	l.dirty = true
}

// Invalidate forces the next Update to recompute. Call it whenever occluder
// geometry changes.
func (l *LightSource) Invalidate() {
	l.dirty = true
}

// Dirty reports whether the cached polygon is stale
func (l *LightSource) Dirty() bool {
	return l.dirty
}

// Update recomputes the visibility polygon against occluders if the light is
// dirty and reports whether it did. The new polygon is built completely
// before it replaces the old one.
func (l *LightSource) Update(occluders []Occluder) bool {
	if !l.dirty {
		return false
	}

	polygon := ComputeVisibilityPolygon(l.pos, occluders)
	l.visible = polygon
	l.dirty = false
	return true
}

// VisiblePolygon returns the most recently computed boundary polygon.
// Callers must not modify the returned slice.
func (l *LightSource) VisiblePolygon() []Point {
	return l.visible
}
