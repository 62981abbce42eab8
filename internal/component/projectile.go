// internal/component/projectile.go
package component

// Bullet flies along a fixed axis-aligned direction until it leaves the
// arena or hits an enemy.
type Bullet struct {
	DirX, DirY float64
	Speed      float64
}
