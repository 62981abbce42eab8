// component/render.go
package component

import "image/color"

// Renderable is the drawing style of an entity.
type Renderable struct {
	Color     color.RGBA
	HasStroke bool
}
