package shadows

// Occluder is an opaque shape the visibility solver casts rays against.
// Vertices are the ray targets; Edges are what rays collide with.
type Occluder interface {
	Vertices() []Point
	Edges() []Segment
}

// Rect is an axis-aligned rectangular occluder. Width and Height must be
// positive; the scene loader rejects anything else.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle at (x, y) with the given size
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Vertices returns the four corners clockwise (screen space, y down)
// starting at the rectangle's position
func (r Rect) Vertices() []Point {
	return []Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// Edges returns the four boundary segments joining consecutive vertices,
// wrapping from the last corner back to the first
func (r Rect) Edges() []Segment {
	v := r.Vertices()
	return []Segment{
		NewSegment(v[0], v[1]),
		NewSegment(v[1], v[2]),
		NewSegment(v[2], v[3]),
		NewSegment(v[3], v[0]),
	}
}

// Moved returns a copy of the rectangle shifted by (dx, dy)
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies strictly inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.X+r.Width && p.Y > r.Y && p.Y < r.Y+r.Height
}
