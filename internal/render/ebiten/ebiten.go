package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/lightcast/internal/render"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenCanvas wraps an ebiten.Image to implement the render.Canvas interface.
type EbitenCanvas struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Canvas.
func WrapEbitenImage(img *ebiten.Image) render.Canvas {
	return &EbitenCanvas{img: img}
}

// Size returns the width and height of the canvas.
func (c *EbitenCanvas) Size() (width, height int) {
	return c.img.Bounds().Dx(), c.img.Bounds().Dy()
}

// Clear fills the entire canvas with the given color.
func (c *EbitenCanvas) Clear(clr color.Color) {
	c.img.Fill(clr)
}

// FillRect draws a filled rectangle.
func (c *EbitenCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.FillRect(c.img, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline.
func (c *EbitenCanvas) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(c.img, x, y, width, height, strokeWidth, clr, false)
}

// FillCircle draws a filled circle.
func (c *EbitenCanvas) FillCircle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.img, x, y, radius, clr, true)
}

// FillTriangle draws one filled triangle in a flat color.
func (c *EbitenCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r := float32(n.R) / 255
	g := float32(n.G) / 255
	b := float32(n.B) / 255
	a := float32(n.A) / 255

	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}

	// Anti-aliasing disabled so neighbouring fan triangles don't leave seams
	c.img.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	})
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (c *EbitenCanvas) GetEbitenImage() *ebiten.Image {
	return c.img
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the main loop with the provided game. A game that stops
// with render.ErrTerminated ends the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenCanvas{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
