package shadows

import (
	"math"
	"sort"
)

const (
	// RayEpsilon is the angular offset (radians) of the rays cast either side
	// of each vertex so that exact grazing incidence never decides a hit alone
	RayEpsilon = 0.01

	// DeadZone is the distance from an edge endpoint inside which an
	// intersection is discarded. It suppresses double hits at shared corners.
	DeadZone = 0.5

	// collinearTolerance is how far (scene units) a boundary vertex may sit
	// off the line through its neighbours and still be merged away
	collinearTolerance = 1e-6

	// duplicateTolerance collapses consecutive boundary vertices this close
	duplicateTolerance = 1e-9
)

// ComputeVisibilityPolygon calculates what the light at lightPos can see.
// The result is the boundary of the visible region ordered by non-increasing
// direction from the light, without the light itself as an apex. Use Fan to
// get the apex-first layout. Zero occluders yield an empty polygon.
func ComputeVisibilityPolygon(lightPos Point, occluders []Occluder) []Point {
	hits := CastRays(lightPos, occluders)

	points := make([]Point, 0, len(hits))
	for _, hit := range hits {
		points = append(points, hit.Point)
	}

	return simplifyBoundary(points)
}

// Fan converts a boundary polygon into the fan layout: the light first, then
// the boundary, then the first boundary vertex again to close the loop
func Fan(lightPos Point, boundary []Point) []Point {
	if len(boundary) == 0 {
		return nil
	}

	fan := make([]Point, 0, len(boundary)+2)
	fan = append(fan, lightPos)
	fan = append(fan, boundary...)
	fan = append(fan, boundary[0])
	return fan
}

// GenerateRays casts three rays around every occluder vertex, at the
// direction from the light through the vertex and ±RayEpsilon either side.
// Rays come back in generation order.
func GenerateRays(lightPos Point, occluders []Occluder) []Ray {
	rays := make([]Ray, 0, len(occluders)*4*3)

	for _, occluder := range occluders {
		for _, vertex := range occluder.Vertices() {
			dir := math.Atan2(lightPos.Y-vertex.Y, lightPos.X-vertex.X) + math.Pi

			for _, role := range []RayRole{RoleBefore, RoleCenter, RoleAfter} {
				rays = append(rays, Ray{
					Segment: NewRay(lightPos, dir+float64(role)*RayEpsilon),
					Target:  vertex,
					Role:    role,
				})
			}
		}
	}

	return rays
}

// SortRays orders rays by direction, largest first. Equal directions keep
// their generation order.
func SortRays(rays []Ray) {
	sort.SliceStable(rays, func(i, j int) bool {
		return rays[i].Dir > rays[j].Dir
	})
}

// CastRays generates, sorts and resolves every ray for the light, returning
// one Hit per ray in sorted order
func CastRays(lightPos Point, occluders []Occluder) []Hit {
	rays := GenerateRays(lightPos, occluders)
	SortRays(rays)

	edges := collectEdges(occluders)

	hits := make([]Hit, 0, len(rays))
	for _, ray := range rays {
		hits = append(hits, resolveRay(lightPos, ray, edges, occluders))
	}

	return hits
}

// collectEdges flattens the boundary segments of all occluders
func collectEdges(occluders []Occluder) []Segment {
	edges := make([]Segment, 0, len(occluders)*4)
	for _, occluder := range occluders {
		edges = append(edges, occluder.Edges()...)
	}
	return edges
}

// nearestHit scans all edges for the intersection closest to the light,
// ignoring intersections inside an edge endpoint's dead zone
func nearestHit(lightPos Point, ray Ray, edges []Segment) (Point, bool) {
	var (
		closest     Point
		closestDist = math.Inf(1)
		found       bool
	)

	for _, edge := range edges {
		point, ok := Intersect(ray.Segment, edge)
		if !ok {
			continue
		}

		if Distance(point, edge.Start) <= DeadZone || Distance(point, edge.End) <= DeadZone {
			continue
		}

		if dist := Distance(point, lightPos); dist < closestDist {
			closestDist = dist
			closest = point
			found = true
		}
	}

	return closest, found
}

// resolveRay picks the visible point for a single ray.
//
// A centre ray is aimed straight at a vertex, so its own hits at that vertex
// always land in the dead zone. If nothing nearer than the vertex survives,
// the vertex is recorded, unless the ray slipped into an occluder through a
// corner whose hits were also swallowed by the dead zone. In that case the
// corner it entered through is recorded instead.
func resolveRay(lightPos Point, ray Ray, edges []Segment, occluders []Occluder) Hit {
	point, found := nearestHit(lightPos, ray, edges)

	if ray.Role == RoleCenter {
		if !found || Distance(point, lightPos) > Distance(ray.Target, lightPos) {
			if corner, ok := enteredCorner(lightPos, ray, edges, occluders); ok {
				return Hit{Ray: ray, Point: corner, Kind: HitCorner}
			}
			return Hit{Ray: ray, Point: ray.Target, Kind: HitCorner}
		}
	}

	if !found {
		return Hit{Ray: ray, Point: ray.End, Kind: HitEscaped}
	}

	return Hit{Ray: ray, Point: point, Kind: HitEdge}
}

// enteredCorner walks the dead-zone intersections between the light and the
// ray's target. If the stretch after one of them runs through an occluder's
// interior, that intersection is where the ray was really stopped.
func enteredCorner(lightPos Point, ray Ray, edges []Segment, occluders []Occluder) (Point, bool) {
	limit := Distance(ray.Target, lightPos)

	var stops []Point
	for _, edge := range edges {
		point, ok := Intersect(ray.Segment, edge)
		if !ok || Distance(point, lightPos) >= limit-DeadZone {
			continue
		}
		stops = append(stops, point)
	}
	if len(stops) == 0 {
		return Point{}, false
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return Distance(stops[i], lightPos) < Distance(stops[j], lightPos)
	})
	stops = append(stops, ray.Target)

	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		mid := Point{X: (prev.X + next.X) / 2, Y: (prev.Y + next.Y) / 2}
		if insideAny(mid, lightPos, occluders) {
			return prev, true
		}
	}

	return Point{}, false
}

// insideAny reports whether p lies inside the outline of any occluder that
// does not also enclose the light. An enclosing occluder is the room the
// light stands in, not an obstacle.
func insideAny(p, lightPos Point, occluders []Occluder) bool {
	for _, occluder := range occluders {
		outline := occluder.Vertices()
		if PointInPolygon(lightPos, outline) {
			continue
		}
		if PointInPolygon(p, outline) {
			return true
		}
	}
	return false
}

// simplifyBoundary drops consecutive duplicates and vertices lying strictly
// between their neighbours on a straight line. The polygon is treated as
// closed; order is preserved.
func simplifyBoundary(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && Distance(out[len(out)-1], p) <= duplicateTolerance {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && Distance(out[0], out[len(out)-1]) <= duplicateTolerance {
		out = out[:len(out)-1]
	}

	for changed := true; changed && len(out) > 3; {
		changed = false
		for i := 0; i < len(out) && len(out) > 3; i++ {
			prev := out[(i+len(out)-1)%len(out)]
			next := out[(i+1)%len(out)]
			if between(prev, out[i], next, collinearTolerance) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}

	return out
}
