package game

// Camera tracks the viewport position for panning around the scene.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Direction is a set of held pan directions.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight

	DirNone Direction = 0
)

// Has reports whether every direction in o is held
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// Delta returns the unit step for the held directions. Opposite directions
// cancel out.
func (d Direction) Delta() (dx, dy float64) {
	if d.Has(DirLeft) {
		dx--
	}
	if d.Has(DirRight) {
		dx++
	}
	if d.Has(DirUp) {
		dy--
	}
	if d.Has(DirDown) {
		dy++
	}
	return dx, dy
}
