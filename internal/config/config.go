package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Arena is the play field; it fills the window.
	ArenaWidth  = ScreenWidth
	ArenaHeight = ScreenHeight

	PlayerSize      = 30.0
	PlayerMoveSpeed = 5.0 // units per tick

	BulletSize   = 10.0
	BulletSpeed  = 5.0  // units per tick
	MuzzleOffset = 10.0 // bullet emerges from the player's edge

	EnemySize  = 30.0
	EnemySpeed = 1.5 // units per tick

	EnemiesPerWaveFactor = 2 // wave w spawns 2*w enemies
	FirstWave            = 1
	WaveDelay            = time.Second

	// FireCooldown of zero keeps one bullet per trigger with no limit.
	FireCooldown = 0 * time.Millisecond

	HUDMarginX     = 10
	HUDMarginY     = 10
	HUDLineSpacing = 18
)

var (
	BackgroundColor = color.RGBA{235, 235, 235, 255}
	ArenaBorder     = color.RGBA{40, 40, 40, 255}
	PlayerColor     = color.RGBA{50, 100, 255, 255}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	BulletStroke    = color.RGBA{0, 0, 0, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	StrokeWidth     = 2.0
)
