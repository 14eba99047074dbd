package shadows

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Intersect solves p0 + t(p1-p0) = p2 + s(p3-p2) for segments a = (p0, p1)
// and b = (p2, p3). It reports the intersection point only when both s and t
// fall within [0, 1]. Parallel and degenerate pairs never intersect.
func Intersect(a, b Segment) (Point, bool) {
	s1x := a.End.X - a.Start.X
	s1y := a.End.Y - a.Start.Y
	s2x := b.End.X - b.Start.X
	s2y := b.End.Y - b.Start.Y

	denominator := -s2x*s1y + s1x*s2y
	if denominator == 0 {
		return Point{}, false
	}

	dx := a.Start.X - b.Start.X
	dy := a.Start.Y - b.Start.Y

	s := (-s1y*dx + s1x*dy) / denominator
	t := (s2x*dy - s2y*dx) / denominator

	// NaN fails every comparison and falls through to no hit
	if s >= 0 && s <= 1 && t >= 0 && t <= 1 {
		return Point{
			X: a.Start.X + t*s1x,
			Y: a.Start.Y + t*s1y,
		}, true
	}

	return Point{}, false
}

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// between reports whether b lies on the segment from a to c, strictly
// between the two, within tol scene units of the line
func between(a, b, c Point, tol float64) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y

	if abx*bcx+aby*bcy <= 0 {
		return false
	}

	ac := Distance(a, c)
	if ac == 0 {
		return false
	}
	cross := abx*bcy - aby*bcx
	return math.Abs(cross)/ac <= tol
}
