// component/movement.go
package component

// Position is the top-left corner of an entity's rectangle in arena units.
type Position struct {
	X, Y float64
}

// Body is the square bounding box of an entity.
type Body struct {
	Size float64
}

// Rect returns the bounding box as min/max corners.
func (b Body) Rect(p Position) (minX, minY, maxX, maxY float64) {
	return p.X, p.Y, p.X + b.Size, p.Y + b.Size
}
