package shadows

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmentDirection(t *testing.T) {
	assert.InDelta(t, math.Pi/2, NewSegment(Point{0, 0}, Point{0, 5}).Dir, 1e-12)
	assert.InDelta(t, math.Pi, NewSegment(Point{0, 0}, Point{-5, 0}).Dir, 1e-12)
	assert.Equal(t, 0.0, NewSegment(Point{3, 3}, Point{3, 3}).Dir)
	assert.Equal(t, 5.0, NewSegment(Point{0, 0}, Point{3, 4}).Length())
}

func TestNewRay(t *testing.T) {
	ray := NewRay(Point{10, 20}, 0)
	assert.Equal(t, Point{10, 20}, ray.Start)
	assert.InDelta(t, 10+RayLength, ray.End.X, 1e-3)
	assert.InDelta(t, 20, ray.End.Y, 1e-3)

	tests := []struct {
		in, want float64
	}{
		{3 * math.Pi / 2, -math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2*math.Pi + 0.01, 0.01},
		{-0.005, -0.005},
	}
	for _, tt := range tests {
		got := NewRay(Point{}, tt.in).Dir
		assert.InDelta(t, tt.want, got, 1e-9, "direction %v", tt.in)
		assert.True(t, got > -math.Pi && got <= math.Pi)
	}
}

func TestRayOutreachesScene(t *testing.T) {
	ray := NewRay(Point{485, 485}, 1.234)
	assert.Greater(t, ray.Length(), 1e9)
}

func TestRectVertices(t *testing.T) {
	r := NewRect(30, 40, 80, 20)
	assert.Equal(t, []Point{{30, 40}, {110, 40}, {110, 60}, {30, 60}}, r.Vertices())
}

func TestRectEdgesWrap(t *testing.T) {
	r := NewRect(0, 0, 10, 5)
	edges := r.Edges()
	require.Len(t, edges, 4)

	v := r.Vertices()
	for i, edge := range edges {
		assert.Equal(t, v[i], edge.Start)
		assert.Equal(t, v[(i+1)%4], edge.End)
	}
	assert.InDelta(t, 0, edges[0].Dir, 1e-12)
	assert.InDelta(t, math.Pi/2, edges[1].Dir, 1e-12)
	assert.InDelta(t, math.Pi, edges[2].Dir, 1e-12)
	assert.InDelta(t, -math.Pi/2, edges[3].Dir, 1e-12)
}

func TestRectMovedAndContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Moved(5, -5)
	assert.Equal(t, Rect{X: 5, Y: -5, Width: 10, Height: 10}, r)

	assert.True(t, r.Contains(Point{10, 0}))
	assert.False(t, r.Contains(Point{5, 0}), "edge is not strictly inside")
	assert.False(t, r.Contains(Point{20, 0}))
}

func TestHitKindString(t *testing.T) {
	assert.Equal(t, "edge", HitEdge.String())
	assert.Equal(t, "corner", HitCorner.String())
	assert.Equal(t, "escaped", HitEscaped.String())
	assert.Equal(t, "unknown", HitKind(42).String())
}
