package shadows

import "math"

// RayLength is how far a ray's synthetic endpoint is pushed from its origin.
// It stands in for infinity and must exceed any scene extent by a wide margin.
const RayLength = 2147483647.0

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to another point
func (p Point) DistanceTo(o Point) float64 {
	return Distance(p, o)
}

// Segment is a directed line piece with its direction angle precomputed.
// Dir is always within (-π, π].
type Segment struct {
	Start, End Point
	Dir        float64
}

// NewSegment creates a bounded segment between two scene points
func NewSegment(p1, p2 Point) Segment {
	return Segment{
		Start: p1,
		End:   p2,
		Dir:   math.Atan2(p2.Y-p1.Y, p2.X-p1.X),
	}
}

// NewRay creates a segment from origin in the given direction whose end is
// RayLength away
func NewRay(origin Point, dir float64) Segment {
	dir = normalizeAngle(dir)
	return Segment{
		Start: origin,
		End: Point{
			X: origin.X + math.Cos(dir)*RayLength,
			Y: origin.Y + math.Sin(dir)*RayLength,
		},
		Dir: dir,
	}
}

// Length returns the distance between the segment's endpoints
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// RayRole identifies a ray's place in the angular triplet cast around a vertex
type RayRole int

const (
	RoleBefore RayRole = iota - 1 // dir - ε
	RoleCenter                    // aimed exactly at the vertex
	RoleAfter                     // dir + ε
)

// Ray is a cast ray together with the vertex it was generated for
type Ray struct {
	Segment
	Target Point
	Role   RayRole
}

// HitKind records how a ray's visible point was resolved
type HitKind int

const (
	// HitEdge means the nearest surviving occluder edge intersection was used
	HitEdge HitKind = iota
	// HitCorner means a centre ray was snapped to the vertex it was aimed at
	HitCorner
	// HitEscaped means nothing was hit and the synthetic endpoint was used
	HitEscaped
)

func (k HitKind) String() string {
	switch k {
	case HitEdge:
		return "edge"
	case HitCorner:
		return "corner"
	case HitEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Hit is the resolved visible point for one ray
type Hit struct {
	Ray   Ray
	Point Point
	Kind  HitKind
}

// normalizeAngle folds an angle into (-π, π]
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
