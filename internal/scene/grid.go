package scene

import "chosenoffset.com/lightcast/internal/core/shadows"

// Blocking is the grid cell that blocks light
const Blocking = '#'

// run is a horizontal stretch of blocking cells, [x0, x1)
type run struct {
	x0, x1 int
}

// OccludersFromGrid turns a tile map into as few rectangles as a simple
// sweep can manage. Each row is split into horizontal runs of blocking
// cells, then runs with the same span in consecutive rows are stacked into
// one taller rectangle. Rows may have different lengths.
func OccludersFromGrid(rows []string, tileSize, offsetX, offsetY float64) []shadows.Rect {
	if tileSize <= 0 {
		return nil
	}

	var rects []shadows.Rect
	open := make(map[run]int) // run -> index into rects, still growing

	for y, row := range rows {
		next := make(map[run]int)

		for _, r := range rowRuns(row) {
			if idx, ok := open[r]; ok {
				rects[idx].Height += tileSize
				next[r] = idx
				continue
			}

			rects = append(rects, shadows.Rect{
				X:      offsetX + float64(r.x0)*tileSize,
				Y:      offsetY + float64(y)*tileSize,
				Width:  float64(r.x1-r.x0) * tileSize,
				Height: tileSize,
			})
			next[r] = len(rects) - 1
		}

		open = next
	}

	return rects
}

// rowRuns finds the horizontal runs of blocking cells in one row
func rowRuns(row string) []run {
	var runs []run
	start := -1

	for x, cell := range []byte(row) {
		if cell == Blocking {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, run{start, x})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{start, len(row)})
	}

	return runs
}
