package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/lightcast/internal/game"
	ebitenrender "chosenoffset.com/lightcast/internal/render/ebiten"
	"chosenoffset.com/lightcast/internal/render/snapshot"
	"chosenoffset.com/lightcast/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "scene file (YAML or JSON); built-in scene if missing")
	snapshotPath := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	width := flag.Int("width", 0, "override the scene width")
	height := flag.Int("height", 0, "override the scene height")
	debug := flag.Bool("debug", false, "outline the bounding occluder and log light updates")
	flag.Parse()

	s, err := loadScene(*scenePath, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	if *snapshotPath != "" {
		if err := renderSnapshot(s, *snapshotPath, *debug); err != nil {
			log.Fatalf("Failed to render snapshot: %v", err)
		}
		log.Printf("Wrote %s", *snapshotPath)
		return
	}

	// Initialize the render backend (ebiten)
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(s, inputMgr)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.SetDebug(*debug)

	// Set up the window
	engine.SetWindowSize(s.Width, s.Height)
	engine.SetWindowTitle("2D Raytracer")
	engine.SetWindowResizable(true)

	log.Println("Starting...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadScene(path string, width, height int) (*scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}

	if width == 0 && height == 0 {
		return s, nil
	}
	if width != 0 {
		s.Width = width
	}
	if height != 0 {
		s.Height = height
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid size override: %w", err)
	}
	return s, nil
}

// renderSnapshot draws a single frame headless, with every light at its
// starting position
func renderSnapshot(s *scene.Scene, path string, debug bool) error {
	g, err := game.New(s, nil)
	if err != nil {
		return err
	}
	g.SetDebug(debug)

	if err := g.Update(); err != nil {
		return err
	}

	canvas := snapshot.New(s.Width, s.Height)
	defer canvas.Close()

	g.Draw(canvas)
	return canvas.SavePNG(path)
}
