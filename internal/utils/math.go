// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Normalize returns the unit vector of (dx, dy) and its length.
// A zero vector stays zero.
func Normalize(dx, dy float64) (nx, ny, length float64) {
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}

// Overlaps reports whether two axis-aligned rectangles share interior area.
// Touching edges do not overlap.
func Overlaps(aMinX, aMinY, aMaxX, aMaxY, bMinX, bMinY, bMaxX, bMaxY float64) bool {
	return aMinY < bMaxY && aMaxY > bMinY && aMinX < bMaxX && aMaxX > bMinX
}
