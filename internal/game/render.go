package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-gradius/internal/config"
	"github.com/vovakirdan/tui-gradius/internal/core"
)

// Screen text.
const (
	Title         = "Gradius Elite: FYP Edition"
	menuHeading   = "--- GRADIUS ELITE PROJECT ---"
	gameOverTitle = "--- GAME OVER ---"
	anyKeyHint    = "press any key"
)

// MenuLabels are the key names shown next to the menu entries.
type MenuLabels struct {
	Start string
	Quit  string
}

// Renderer draws a Game onto a core.Screen using a theme.
// The screen should be Width x ScreenHeight.
type Renderer struct {
	theme  config.Theme
	labels MenuLabels
}

// NewRenderer creates a renderer with the given theme and menu key labels.
func NewRenderer(theme config.Theme, labels MenuLabels) *Renderer {
	if labels.Start == "" {
		labels.Start = "1"
	}
	if labels.Quit == "" {
		labels.Quit = "2"
	}
	return &Renderer{theme: theme, labels: labels}
}

// Render draws whatever the current phase shows.
func (r *Renderer) Render(dst *core.Screen, g *Game) {
	dst.Clear()

	switch g.Phase() {
	case PhaseMainMenu:
		r.drawMenu(dst)
	case PhasePlaying:
		r.drawPlayfield(dst, g)
	case PhaseGameOver:
		r.drawGameOver(dst, g)
	}
}

// drawPlayfield stamps bullets, enemies, bonuses, then the ship on top,
// followed by the status line under the grid.
func (r *Renderer) drawPlayfield(dst *core.Screen, g *Game) {
	for _, b := range g.Bullets() {
		if b.X >= 0 && b.X < Width {
			dst.SetCell(b.X, b.Y, r.theme.Bullet.Rune(), r.theme.Bullet.Color)
		}
	}
	for _, e := range g.Enemies() {
		if e.X > 0 && e.X < Width {
			dst.SetCell(e.X, e.Y, r.theme.Enemy.Rune(), r.theme.Enemy.Color)
		}
	}
	for _, bn := range g.Bonuses() {
		if bn.X > 0 && bn.X < Width {
			dst.SetCell(bn.X, bn.Y, r.theme.Bonus.Rune(), r.theme.Bonus.Color)
		}
	}

	p := g.Player()
	i := 0
	for _, ch := range r.theme.Player.Glyph {
		if p.X+i >= Width {
			break
		}
		dst.SetCell(p.X+i, p.Y, ch, r.theme.Player.Color)
		i++
	}

	dst.DrawTextColor(0, Height, StatusLine(g.Score(), p.Lives), r.theme.Status)
}

// StatusLine formats the HUD shown below the playfield.
func StatusLine(score, lives int) string {
	return fmt.Sprintf(" SCORE: %05d | LIVES: %d | [ BONUS COINS ACTIVE ]", score, lives)
}

func (r *Renderer) drawMenu(dst *core.Screen) {
	r.drawMessageBox(dst, []string{
		menuHeading,
		"",
		r.labels.Start + ". START MISSION",
		r.labels.Quit + ". EXIT",
	})
}

func (r *Renderer) drawGameOver(dst *core.Screen, g *Game) {
	r.drawMessageBox(dst, []string{
		gameOverTitle,
		"",
		"FINAL SCORE: " + strconv.Itoa(g.Score()),
	})
	dst.DrawTextCentered(Height-2, anyKeyHint, core.ColorGray)
}

// drawMessageBox draws left-aligned lines inside a centered box.
func (r *Renderer) drawMessageBox(dst *core.Screen, lines []string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}

	boxW := inner + 6
	boxH := len(lines) + 4
	box := core.CenterIn(core.NewRect(0, 0, dst.Width(), Height), boxW, boxH)

	dst.DrawBox(box, r.theme.Menu)
	for i, l := range lines {
		dst.DrawTextColor(box.X+3, box.Y+2+i, l, r.theme.Menu)
	}
}
