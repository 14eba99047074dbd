package game

import (
	"fmt"
	"log"

	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
	"chosenoffset.com/lightcast/internal/render/lighting"
	"chosenoffset.com/lightcast/internal/scene"
)

const (
	// DefaultPanSpeed is how far the camera moves per tick while a
	// direction key is held (pixels)
	DefaultPanSpeed = 4.0

	// lightRadius is the size of the disc drawn at each light
	lightRadius = 5.0
)

// Game holds the scene being lit and drives it from user input.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        *scene.Scene
	Palette      scene.Palette
	Camera       Camera
	PanSpeed     float64
	InputMgr     render.InputManager // nil when rendering headless

	LightingManager *lighting.Manager

	occluders []shadows.Occluder
	rects     []shadows.Rect
	primary   string // light that follows the cursor

	// Debug
	Debug      bool
	FrameCount int
}

// New builds a game for the scene. The first light in the scene follows
// the cursor.
func New(s *scene.Scene, input render.InputManager) (*Game, error) {
	palette, err := s.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scene colours: %w", err)
	}

	g := &Game{
		ScreenWidth:     s.Width,
		ScreenHeight:    s.Height,
		Scene:           s,
		Palette:         palette,
		PanSpeed:        DefaultPanSpeed,
		InputMgr:        input,
		LightingManager: lighting.NewManager(),
		occluders:       s.Occluders(),
		rects:           s.Rects(),
	}

	for i, l := range s.Lights {
		col, err := s.LightColorAt(i)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve colour of light %d: %w", i, err)
		}
		id := g.LightingManager.AddLight(shadows.Point{X: l.X, Y: l.Y}, col, lightRadius)
		if i == 0 {
			g.primary = id
		}
	}

	log.Printf("Scene ready: %dx%d, %d occluders, %d lights",
		s.Width, s.Height, len(g.occluders), g.LightingManager.Count())

	return g, nil
}

// SetDebug outlines the bounding occluder and logs every light recomputation
func (g *Game) SetDebug(enabled bool) {
	g.Debug = enabled
	g.LightingManager.SetDebug(enabled)
}

// Occluders returns everything that blocks light, in world coordinates
func (g *Game) Occluders() []shadows.Occluder {
	return g.occluders
}

// Update handles input and recomputes any lights that moved.
func (g *Game) Update() error {
	g.FrameCount++

	if g.InputMgr != nil {
		if g.InputMgr.IsKeyPressed(render.KeyEscape) {
			return render.ErrTerminated
		}

		g.UpdateCamera(g.heldDirection())

		// The cursor is in screen space; lights live in world space
		cx, cy := g.InputMgr.GetCursorPosition()
		g.LightingManager.MoveLight(g.primary, shadows.Point{
			X: float64(cx) + g.Camera.X,
			Y: float64(cy) + g.Camera.Y,
		})
	}

	g.LightingManager.Update(g.occluders)
	return nil
}

// UpdateCamera pans the camera in the held directions.
func (g *Game) UpdateCamera(dir Direction) {
	dx, dy := dir.Delta()
	g.Camera.X += dx * g.PanSpeed
	g.Camera.Y += dy * g.PanSpeed
}

func (g *Game) heldDirection() Direction {
	dir := DirNone
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		dir |= DirUp
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		dir |= DirDown
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		dir |= DirLeft
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		dir |= DirRight
	}
	return dir
}

// Layout returns the scene's size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
