package core

import "testing"

func TestDrawSegmentHorizontal(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawSegment(1, 2, 6, 2, '#', ColorDefault)

	for x := 1; x <= 6; x++ {
		if s.Get(x, 2) != '#' {
			t.Errorf("Expected '#' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
	if s.Get(0, 2) != ' ' || s.Get(7, 2) != ' ' {
		t.Error("Segment should not extend past its endpoints")
	}
}

func TestDrawSegmentVertical(t *testing.T) {
	s := NewScreen(5, 10)
	s.DrawSegment(2, 1, 2, 6, '|', ColorDefault)

	for y := 1; y <= 6; y++ {
		if s.Get(2, y) != '|' {
			t.Errorf("Expected '|' at (2, %d), got %q", y, s.Get(2, y))
		}
	}
}

func TestDrawSegmentDiagonal(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawSegment(0, 0, 5, 5, '#', ColorDefault)

	// A perfect diagonal hits every (i, i) cell
	for i := 0; i <= 5; i++ {
		if s.Get(i, i) != '#' {
			t.Errorf("Expected '#' at (%d, %d), got %q", i, i, s.Get(i, i))
		}
	}
}

func TestDrawSegmentReversed(t *testing.T) {
	a := NewScreen(10, 10)
	b := NewScreen(10, 10)

	a.DrawSegment(1, 1, 7, 4, '#', ColorDefault)
	b.DrawSegment(7, 4, 1, 1, '#', ColorDefault)

	// Both directions reach both endpoints and cover every column in
	// between exactly once for a shallow line.
	for _, s := range []*Screen{a, b} {
		if s.Get(1, 1) != '#' || s.Get(7, 4) != '#' {
			t.Fatal("Segment must cover both endpoints")
		}
		for x := 1; x <= 7; x++ {
			hits := 0
			for y := 0; y < 10; y++ {
				if s.Get(x, y) == '#' {
					hits++
				}
			}
			if hits != 1 {
				t.Errorf("Column %d has %d cells, expected 1", x, hits)
			}
		}
	}
}

func TestDrawSegmentClipped(t *testing.T) {
	s := NewScreen(5, 5)
	// Endpoints well outside the buffer; should not panic
	s.DrawSegment(-10, 2, 20, 2, '#', ColorDefault)

	for x := 0; x < 5; x++ {
		if s.Get(x, 2) != '#' {
			t.Errorf("Clipped segment should still cover (%d, 2)", x)
		}
	}
}

func TestDrawPolylineOpen(t *testing.T) {
	s := NewScreen(10, 10)
	pts := [][2]int{{1, 1}, {5, 1}, {5, 5}}
	s.DrawPolyline(pts, false, '#', ColorDefault)

	if s.Get(3, 1) != '#' {
		t.Error("First segment of polyline missing")
	}
	if s.Get(5, 3) != '#' {
		t.Error("Second segment of polyline missing")
	}
	// Open polyline must not connect last point back to first
	if s.Get(3, 3) != ' ' {
		t.Error("Open polyline should not draw a closing segment")
	}
}

func TestDrawPolylineClosed(t *testing.T) {
	s := NewScreen(10, 10)
	pts := [][2]int{{1, 1}, {5, 1}, {5, 5}, {1, 5}}
	s.DrawPolyline(pts, true, '#', ColorDefault)

	// Closing edge from (1,5) back to (1,1)
	for y := 1; y <= 5; y++ {
		if s.Get(1, y) != '#' {
			t.Errorf("Closing edge missing at (1, %d)", y)
		}
	}
}

func TestDrawPolylineDegenerate(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawPolyline(nil, true, '#', ColorDefault) // Should not panic

	s.DrawPolyline([][2]int{{3, 3}}, false, '#', ColorDefault)
	if s.Get(3, 3) != '#' {
		t.Error("Single-point polyline should plot one cell")
	}
}
