package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
	"chosenoffset.com/lightcast/internal/render/snapshot"
	"chosenoffset.com/lightcast/internal/scene"
)

type fakeInput struct {
	held   map[render.Key]bool
	cx, cy int
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[render.Key]bool)}
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool {
	return f.held[key]
}

func (f *fakeInput) GetCursorPosition() (int, int) {
	return f.cx, f.cy
}

type rect struct{ x, y, w, h float32 }

type fakeCanvas struct {
	cleared   color.Color
	rects     []rect
	outlines  []rect
	triangles int
	circles   int
}

func (c *fakeCanvas) Size() (int, int) {
	return 750, 750
}

func (c *fakeCanvas) Clear(clr color.Color) {
	c.cleared = clr
}

func (c *fakeCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.rects = append(c.rects, rect{x, y, w, h})
}

func (c *fakeCanvas) StrokeRect(x, y, w, h, strokeWidth float32, clr color.Color) {
	c.outlines = append(c.outlines, rect{x, y, w, h})
}

func (c *fakeCanvas) FillCircle(x, y, radius float32, clr color.Color) {
	c.circles++
}

func (c *fakeCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	c.triangles++
}

func primaryPos(t *testing.T, g *Game) shadows.Point {
	t.Helper()
	lights := g.LightingManager.Lights()
	require.NotEmpty(t, lights)
	return lights[0].Source.Position()
}

func TestNewGameFromDefaultScene(t *testing.T) {
	g, err := New(scene.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, g.LightingManager.Count())
	assert.Len(t, g.Occluders(), 4)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 750, w)
	assert.Equal(t, 750, h)
}

func TestNewGameRejectsBadColours(t *testing.T) {
	s := scene.Default()
	s.Background = "nope"
	_, err := New(s, nil)
	assert.Error(t, err)

	s = scene.Default()
	s.Lights[0].Color = "nope"
	_, err = New(s, nil)
	assert.Error(t, err)
}

func TestCursorMovesPrimaryLight(t *testing.T) {
	s := scene.Default()
	s.Lights = append(s.Lights, scene.Light{X: 100, Y: 600})

	input := newFakeInput()
	input.cx, input.cy = 200, 300

	g, err := New(s, input)
	require.NoError(t, err)
	require.NoError(t, g.Update())

	assert.Equal(t, shadows.Point{X: 200, Y: 300}, primaryPos(t, g))
	assert.Equal(t, shadows.Point{X: 100, Y: 600}, g.LightingManager.Lights()[1].Source.Position(),
		"only the first light follows the cursor")
	assert.Equal(t, 1, g.FrameCount)
}

func TestHeldKeysPanCamera(t *testing.T) {
	input := newFakeInput()
	input.cx, input.cy = 200, 300

	g, err := New(scene.Default(), input)
	require.NoError(t, err)

	input.held[render.KeyD] = true
	input.held[render.KeyDown] = true
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, Camera{X: 2 * DefaultPanSpeed, Y: 2 * DefaultPanSpeed}, g.Camera)
	assert.Equal(t, shadows.Point{X: 208, Y: 308}, primaryPos(t, g), "cursor is offset by the camera")

	c := &fakeCanvas{}
	g.Draw(c)
	require.NotEmpty(t, c.rects)
	assert.Equal(t, rect{30 - 8, 30 - 8, 80, 80}, c.rects[0])
}

func TestEscapeTerminates(t *testing.T) {
	input := newFakeInput()
	input.held[render.KeyEscape] = true

	g, err := New(scene.Default(), input)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Update(), render.ErrTerminated)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy float64
	}{
		{"none", DirNone, 0, 0},
		{"up", DirUp, 0, -1},
		{"down right", DirDown | DirRight, 1, 1},
		{"opposites cancel", DirLeft | DirRight | DirUp, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	d := DirUp | DirLeft
	assert.True(t, d.Has(DirUp))
	assert.True(t, d.Has(DirUp|DirLeft))
	assert.False(t, d.Has(DirDown))
}

func TestDrawSkipsBoundingOccluder(t *testing.T) {
	g, err := New(scene.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, g.Update())

	c := &fakeCanvas{}
	g.Draw(c)

	assert.Equal(t, g.Palette.Background, c.cleared)
	assert.Equal(t, []rect{
		{30, 30, 80, 80},
		{400, 80, 60, 120},
		{300, 550, 350, 50},
	}, c.rects)

	polygon := g.LightingManager.Lights()[0].Source.VisiblePolygon()
	require.NotEmpty(t, polygon)
	assert.Equal(t, len(polygon), c.triangles, "one triangle per boundary edge, closing edge included")
	assert.Equal(t, 1, c.circles)
	assert.Empty(t, c.outlines)

	g.SetDebug(true)
	c = &fakeCanvas{}
	g.Draw(c)
	assert.Equal(t, []rect{{0, 0, 750, 750}}, c.outlines, "debug outlines the bounding occluder")
}

func TestRenderDefaultSceneOffscreen(t *testing.T) {
	g, err := New(scene.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, g.Update())

	c := snapshot.New(g.ScreenWidth, g.ScreenHeight)
	defer c.Close()
	g.Draw(c)
	require.NoError(t, c.Err())

	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(c.Image().At(x, y)).(color.NRGBA)
	}

	near := func(want, got color.NRGBA) bool {
		d := func(a, b uint8) int {
			if a > b {
				return int(a - b)
			}
			return int(b - a)
		}
		return d(want.R, got.R) <= 1 && d(want.G, got.G) <= 1 && d(want.B, got.B) <= 1
	}

	assert.True(t, near(g.Palette.Background, at(430, 40)), "shadowed by the block at (400,80)")
	assert.False(t, near(g.Palette.Background, at(600, 300)), "lit")
	assert.True(t, near(g.Palette.Occluder, at(70, 70)), "occluders are drawn")
}
