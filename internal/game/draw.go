package game

import (
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
)

// Draw renders the scene to the screen.
func (g *Game) Draw(screen render.Canvas) {
	screen.Clear(g.Palette.Background)

	g.drawOccluders(screen)
	g.drawLights(screen)

	if g.Debug && g.Scene.Bounds {
		b := g.Scene.BoundingRect()
		screen.StrokeRect(
			float32(b.X-g.Camera.X), float32(b.Y-g.Camera.Y),
			float32(b.Width), float32(b.Height), 1,
			g.Palette.Occluder,
		)
	}
}

// drawOccluders fills every drawable occluder. The bounding occluder is
// never drawn or it would cover the whole view.
func (g *Game) drawOccluders(screen render.Canvas) {
	for _, r := range g.rects {
		screen.FillRect(
			float32(r.X-g.Camera.X), float32(r.Y-g.Camera.Y),
			float32(r.Width), float32(r.Height),
			g.Palette.Occluder,
		)
	}
}

// drawLights fills each light's visibility polygon as a triangle fan around
// the light, then marks the light itself.
func (g *Game) drawLights(screen render.Canvas) {
	for _, l := range g.LightingManager.Lights() {
		pos := l.Source.Position()
		fan := shadows.Fan(pos, l.Source.VisiblePolygon())

		// fan is light, p0..pn-1, p0 so the closing triangle is included
		for i := 1; i+1 < len(fan); i++ {
			a := g.toScreen(fan[0])
			b := g.toScreen(fan[i])
			c := g.toScreen(fan[i+1])
			screen.FillTriangle(a.X, a.Y, b.X, b.Y, c.X, c.Y, l.Color)
		}

		p := g.toScreen(pos)
		screen.FillCircle(p.X, p.Y, float32(l.Radius), l.Color)
	}
}

type screenPoint struct {
	X, Y float32
}

func (g *Game) toScreen(p shadows.Point) screenPoint {
	return screenPoint{
		X: float32(p.X - g.Camera.X),
		Y: float32(p.Y - g.Camera.Y),
	}
}
