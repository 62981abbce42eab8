package terminal

import (
	"fmt"

	"wavesurvival/internal/app"
	"wavesurvival/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

var _ interfaces.Display = (*View)(nil)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	bulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View draws a session onto a tcell screen, scaling the arena to the grid
// below a one-line status bar.
type View struct {
	screen     tcell.Screen
	arenaW     float64
	arenaH     float64
	waveLabel  string
	enemyLabel string
	paused     bool
}

func NewView(screen tcell.Screen, arenaW, arenaH float64) *View {
	v := &View{screen: screen, arenaW: arenaW, arenaH: arenaH}
	v.SetWave(0)
	v.SetEnemiesLeft(0)
	return v
}

func (v *View) SetWave(wave int) {
	v.waveLabel = fmt.Sprintf("Wave: %d", wave)
}

func (v *View) SetEnemiesLeft(count int) {
	v.enemyLabel = fmt.Sprintf("Enemies Left: %d", count)
}

func (v *View) SetPaused(paused bool) {
	v.paused = paused
}

// Cell maps an arena point to a grid cell inside a cols x rows field.
func Cell(x, y, arenaW, arenaH float64, cols, rows int) (int, int) {
	cx := int(x / arenaW * float64(cols))
	cy := int(y / arenaH * float64(rows))
	return cx, cy
}

func (v *View) Draw(snap app.Snapshot) {
	v.screen.Clear()
	width, height := v.screen.Size()
	cols, rows := width-2, height-3
	if cols <= 0 || rows <= 0 {
		v.screen.Show()
		return
	}

	status := v.waveLabel + "  " + v.enemyLabel
	if v.paused {
		status += "  PAUSED"
	}
	v.text(0, 0, status)
	v.border(0, 1, cols+2, rows+2)

	plot := func(r app.Rect, ch rune, style tcell.Style) {
		cx, cy := Cell(r.X, r.Y, v.arenaW, v.arenaH, cols, rows)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return
		}
		v.screen.SetContent(cx+1, cy+2, ch, nil, style)
	}
	for _, e := range snap.Enemies {
		plot(e, 'X', enemyStyle)
	}
	for _, b := range snap.Bullets {
		plot(b, '*', bulletStyle)
	}
	plot(snap.Player, '@', playerStyle)

	v.screen.Show()
}

func (v *View) text(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}

func (v *View) border(x, y, w, h int) {
	for i := x; i < x+w; i++ {
		v.screen.SetContent(i, y, '-', nil, borderStyle)
		v.screen.SetContent(i, y+h-1, '-', nil, borderStyle)
	}
	for j := y; j < y+h; j++ {
		v.screen.SetContent(x, j, '|', nil, borderStyle)
		v.screen.SetContent(x+w-1, j, '|', nil, borderStyle)
	}
}
