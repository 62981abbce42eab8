package ui

import (
	"fmt"
	"image/color"

	"wavesurvival/internal/config"
	"wavesurvival/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var _ interfaces.Display = (*HUD)(nil)

// HUD shows the wave and enemies-left counters in the top-left corner.
type HUD struct {
	X, Y       float64
	Color      color.Color
	face       text.Face
	waveLabel  string
	enemyLabel string
}

func NewHUD(x, y float64) *HUD {
	h := &HUD{
		X:     x,
		Y:     y,
		Color: config.TextDarkColor,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	h.SetWave(0)
	h.SetEnemiesLeft(0)
	return h
}

func (h *HUD) SetWave(wave int) {
	h.waveLabel = fmt.Sprintf("Wave: %d", wave)
}

func (h *HUD) SetEnemiesLeft(count int) {
	h.enemyLabel = fmt.Sprintf("Enemies Left: %d", count)
}

// Labels returns the current label texts.
func (h *HUD) Labels() (wave, enemies string) {
	return h.waveLabel, h.enemyLabel
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.drawLine(screen, h.waveLabel, 0)
	h.drawLine(screen, h.enemyLabel, 1)
}

func (h *HUD) drawLine(screen *ebiten.Image, s string, line int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(h.X, h.Y+float64(line*config.HUDLineSpacing))
	op.ColorScale.ScaleWithColor(h.Color)
	text.Draw(screen, s, h.face, op)
}

// DrawCentered draws s centred on the screen, used by overlays.
func DrawCentered(screen *ebiten.Image, s string, clr color.Color) {
	face := text.NewGoXFace(basicfont.Face7x13)
	w, hgt := text.Measure(s, face, 0)
	bounds := screen.Bounds()

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(bounds.Dx())-w)/2, (float64(bounds.Dy())-hgt)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
