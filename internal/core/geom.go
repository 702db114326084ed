// Package core provides the harness-facing primitives shared by the game
// and the terminal platform: runtime config, input frames and the screen
// buffer. It has no external dependencies so game logic stays testable.
package core

// Rect is an axis-aligned area on the screen used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Fits returns true if the rectangle lies entirely within a w x h area.
func (r Rect) Fits(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}

// Centered returns a w x h rectangle centered in an areaW x areaH area.
// The position is clamped to zero when the area is too small.
func Centered(w, h, areaW, areaH int) Rect {
	return NewRect(max(0, (areaW-w)/2), max(0, (areaH-h)/2), w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
