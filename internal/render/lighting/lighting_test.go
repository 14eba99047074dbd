package lighting

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

var white = color.NRGBA{255, 255, 255, 51}

func room() []shadows.Occluder {
	return []shadows.Occluder{
		shadows.NewRect(0, 0, 750, 750),
		shadows.NewRect(300, 550, 350, 50),
	}
}

func TestAddAndRemoveLights(t *testing.T) {
	m := NewManager()
	a := m.AddLight(shadows.Point{X: 10, Y: 10}, white, 5)
	b := m.AddLight(shadows.Point{X: 20, Y: 20}, white, 5)
	c := m.AddLight(shadows.Point{X: 30, Y: 30}, white, 5)

	_, err := uuid.Parse(a)
	require.NoError(t, err, "IDs are UUIDs")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 3, m.Count())

	m.RemoveLight(b)
	m.RemoveLight("missing")

	lights := m.Lights()
	require.Len(t, lights, 2)
	assert.Equal(t, a, lights[0].ID)
	assert.Equal(t, c, lights[1].ID)

	_, ok := m.GetLight(b)
	assert.False(t, ok)

	m.Clear()
	assert.Zero(t, m.Count())
	assert.Empty(t, m.Lights())
}

func TestUpdateOnlyRecomputesStaleLights(t *testing.T) {
	m := NewManager()
	a := m.AddLight(shadows.Point{X: 485, Y: 485}, white, 5)
	m.AddLight(shadows.Point{X: 100, Y: 100}, white, 5)

	assert.Equal(t, 2, m.Update(room()), "new lights start stale")
	assert.Equal(t, 0, m.Update(room()))

	require.True(t, m.MoveLight(a, shadows.Point{X: 200, Y: 200}))
	assert.Equal(t, 1, m.Update(room()))

	assert.True(t, m.MoveLight(a, shadows.Point{X: 200, Y: 200}))
	assert.Equal(t, 0, m.Update(room()), "same position is not a move")

	assert.False(t, m.MoveLight("missing", shadows.Point{}))

	m.InvalidateAll()
	assert.Equal(t, 2, m.Update(room()))
}

func TestUpdateFillsPolygons(t *testing.T) {
	m := NewManager()
	m.SetDebug(true)
	id := m.AddLight(shadows.Point{X: 485, Y: 485}, white, 5)
	m.Update([]shadows.Occluder{shadows.NewRect(0, 0, 750, 750)})

	l, ok := m.GetLight(id)
	require.True(t, ok)
	assert.Len(t, l.Source.VisiblePolygon(), 4)
	assert.Equal(t, white, l.Color)
	assert.Equal(t, 5.0, l.Radius)
}
