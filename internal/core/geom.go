// Package core holds the terminal-free building blocks shared by the
// simulation and the TUI: the cell buffer, colours, grid geometry, input
// actions and per-tick results. Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned area of the character grid.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect returns the rectangle with top-left (x, y) and size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenterIn returns a w×h rectangle centered inside outer.
// Odd leftovers go to the right and bottom.
func CenterIn(outer Rect, w, h int) Rect {
	return Rect{
		X: outer.X + (outer.W-w)/2,
		Y: outer.Y + (outer.H-h)/2,
		W: w,
		H: h,
	}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
