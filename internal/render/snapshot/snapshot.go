// Package snapshot renders frames offscreen with the gg software rasterizer.
// It backs the -snapshot flag and lets render tests inspect real pixels
// without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"chosenoffset.com/lightcast/internal/render"
)

// Canvas implements render.Canvas over a gg.Context.
//
// The canvas methods have no error return, so the first rasterizer error is
// kept and reported by Err, SavePNG and EncodePNG.
type Canvas struct {
	dc  *gg.Context
	err error
}

var _ render.Canvas = (*Canvas)(nil)

// New creates an offscreen canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(clr color.Color) {
	c.dc.ClearWithColor(gg.FromColor(clr))
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	c.keep(c.dc.Fill())
}

// StrokeRect draws a rectangle outline.
func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(float64(strokeWidth))
	c.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	c.keep(c.dc.Stroke())
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(x, y, radius float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawCircle(float64(x), float64(y), float64(radius))
	c.keep(c.dc.Fill())
}

// FillTriangle draws one filled triangle.
func (c *Canvas) FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.MoveTo(float64(x1), float64(y1))
	c.dc.LineTo(float64(x2), float64(y2))
	c.dc.LineTo(float64(x3), float64(y3))
	c.dc.ClosePath()
	c.keep(c.dc.Fill())
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("failed to render snapshot: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return fmt.Errorf("failed to render snapshot: %w", c.err)
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Close releases the rasterizer's resources.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}
