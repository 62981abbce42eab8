package ui

import (
	"wavesurvival/internal/config"
	"wavesurvival/internal/entity"
	"wavesurvival/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws every live entity as a rectangle: enemies, then bullets,
// then the player on top. Entities removed from the ECS are simply not drawn
// on the next frame.
type Renderer struct {
	ecs *entity.ECS
}

func NewRenderer(ecs *entity.ECS) *Renderer {
	return &Renderer{ecs: ecs}
}

func (r *Renderer) Draw(screen *ebiten.Image, offsetX, offsetY float32) {
	for _, id := range r.ecs.EnemyIDs() {
		r.drawEntity(screen, id, offsetX, offsetY)
	}
	for _, id := range r.ecs.BulletIDs() {
		r.drawEntity(screen, id, offsetX, offsetY)
	}
	r.drawEntity(screen, r.ecs.PlayerID, offsetX, offsetY)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, id types.EntityID, offsetX, offsetY float32) {
	render, hasRender := r.ecs.Renderables[id]
	pos, hasPos := r.ecs.Positions[id]
	body, hasBody := r.ecs.Bodies[id]
	if !hasRender || !hasPos || !hasBody {
		return
	}
	x := float32(pos.X) + offsetX
	y := float32(pos.Y) + offsetY
	size := float32(body.Size)

	vector.DrawFilledRect(screen, x, y, size, size, render.Color, false)
	if render.HasStroke {
		vector.StrokeRect(screen, x, y, size, size, float32(config.StrokeWidth), config.BulletStroke, false)
	}
}
