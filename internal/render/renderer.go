package render

import (
	"errors"
	"image/color"
)

// Canvas is the drawing surface the visualizer renders one frame onto.
// It abstracts the underlying graphics engine so the same drawing code can
// target a window or an offscreen image.
type Canvas interface {
	// Size returns the canvas size in pixels.
	Size() (width, height int)

	// Clear fills the entire canvas with the given color.
	Clear(clr color.Color)

	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, width, height float32, clr color.Color)

	// StrokeRect draws a rectangle outline.
	StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle.
	FillCircle(x, y, radius float32, clr color.Color)

	// FillTriangle draws one filled triangle.
	FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	GetCursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the visualizer reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Game represents the interface that the engine will call.
type Game interface {
	// Update updates the logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the main loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the main loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrTerminated is returned from Game.Update to end the main loop cleanly.
// Engines treat it as a normal exit.
var ErrTerminated = errors.New("render: terminated")
