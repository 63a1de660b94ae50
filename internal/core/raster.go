package core

// DrawSegment rasterizes a line segment into the screen buffer using
// Bresenham's algorithm. Cells outside the buffer are clipped by SetCell.
func (s *Screen) DrawSegment(x0, y0, x1, y1 int, r rune, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		s.SetCell(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPolyline rasterizes consecutive segments through the given cell
// coordinates. When closed is true the final point connects back to the
// first, producing a closed silhouette instead of an open stroke.
func (s *Screen) DrawPolyline(pts [][2]int, closed bool, r rune, c Color) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		s.SetCell(pts[0][0], pts[0][1], r, c)
		return
	}

	for i := 0; i < len(pts)-1; i++ {
		s.DrawSegment(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], r, c)
	}
	if closed {
		last := pts[len(pts)-1]
		s.DrawSegment(last[0], last[1], pts[0][0], pts[0][1], r, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
