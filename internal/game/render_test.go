package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gradius/internal/config"
	"github.com/vovakirdan/tui-gradius/internal/core"
)

func newTestRenderer() (*Renderer, *core.Screen) {
	return NewRenderer(config.DefaultTheme(), MenuLabels{}), core.NewScreen(Width, ScreenHeight)
}

func TestStatusLine(t *testing.T) {
	expected := " SCORE: 00350 | LIVES: 2 | [ BONUS COINS ACTIVE ]"
	if got := StatusLine(350, 2); got != expected {
		t.Errorf("StatusLine() = %q, expected %q", got, expected)
	}
}

func TestRenderPlayfield(t *testing.T) {
	r, screen := newTestRenderer()
	g := quietGame()
	g.score = 200
	g.enemies = append(g.enemies, NewEnemy(40, 3))
	g.bullets = append(g.bullets, NewBullet(20, 4))
	g.bonuses = append(g.bonuses, NewBonus(60, 5))

	r.Render(screen, g)

	if cell := screen.GetCell(40, 3); cell.Rune != 'X' || cell.Color != core.ColorRed {
		t.Errorf("enemy cell = %+v, expected red X", cell)
	}
	if cell := screen.GetCell(20, 4); cell.Rune != '>' || cell.Color != core.ColorYellow {
		t.Errorf("bullet cell = %+v, expected yellow >", cell)
	}
	if cell := screen.GetCell(60, 5); cell.Rune != '$' || cell.Color != core.ColorMagenta {
		t.Errorf("bonus cell = %+v, expected magenta $", cell)
	}

	row := screen.Row(PlayerStartY)
	if row[PlayerStartX:PlayerStartX+5] != "<#=O>" {
		t.Errorf("player sprite row = %q", row)
	}
	if screen.GetCell(PlayerStartX, PlayerStartY).Color != core.ColorCyan {
		t.Error("player should be drawn in cyan")
	}

	status := screen.Row(Height)
	if !strings.HasPrefix(status, StatusLine(200, 3)) {
		t.Errorf("status row = %q", status)
	}
}

func TestRenderPlayerDrawnLast(t *testing.T) {
	r, screen := newTestRenderer()
	g := quietGame()
	// Overlaps the ship's '#' cell.
	g.enemies = append(g.enemies, NewEnemy(PlayerStartX+1, PlayerStartY))

	r.Render(screen, g)

	if got := screen.Get(PlayerStartX+1, PlayerStartY); got != '#' {
		t.Errorf("expected the ship to occlude the enemy, got %q", got)
	}
}

func TestRenderClipsPlayerAtRightEdge(t *testing.T) {
	r, screen := newTestRenderer()
	g := quietGame()
	g.player.X = Width - 2

	r.Render(screen, g)

	row := screen.Row(PlayerStartY)
	if !strings.HasSuffix(row, "<#") {
		t.Errorf("expected clipped sprite at the edge, got %q", row[Width-5:])
	}
	if screen.Get(0, PlayerStartY+1) != ' ' {
		t.Error("clipped sprite must not wrap to the next row")
	}
}

func TestRenderSkipsEdgeColumns(t *testing.T) {
	r, screen := newTestRenderer()
	g := quietGame()
	g.enemies = append(g.enemies, NewEnemy(0, 2))
	g.bonuses = append(g.bonuses, NewBonus(0, 3))
	g.bullets = append(g.bullets, NewBullet(0, 4))

	r.Render(screen, g)

	if screen.Get(0, 2) != ' ' || screen.Get(0, 3) != ' ' {
		t.Error("enemies and bonuses in column 0 are not drawn")
	}
	if screen.Get(0, 4) != '>' {
		t.Error("bullets in column 0 are drawn")
	}
}

func TestRenderMenu(t *testing.T) {
	r, screen := newTestRenderer()
	g := New(1)

	r.Render(screen, g)
	out := screen.String()

	for _, want := range []string{"--- GRADIUS ELITE PROJECT ---", "1. START MISSION", "2. EXIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu should contain %q", want)
		}
	}
	if strings.Contains(out, "SCORE:") {
		t.Error("menu should not show the status line")
	}
}

func TestRenderMenuUsesLabels(t *testing.T) {
	r := NewRenderer(config.DefaultTheme(), MenuLabels{Start: "enter", Quit: "q"})
	screen := core.NewScreen(Width, ScreenHeight)

	r.Render(screen, New(1))
	out := screen.String()

	if !strings.Contains(out, "enter. START MISSION") || !strings.Contains(out, "q. EXIT") {
		t.Errorf("menu should use the configured key labels:\n%s", out)
	}
}

func TestRenderGameOver(t *testing.T) {
	r, screen := newTestRenderer()
	g := quietGame()
	g.score = 1250
	g.player.Lives = 1
	g.enemies = append(g.enemies, NewEnemy(8, PlayerStartY))
	g.Step(idle())

	r.Render(screen, g)
	out := screen.String()

	if !strings.Contains(out, "--- GAME OVER ---") {
		t.Error("game over screen should show its heading")
	}
	if !strings.Contains(out, "FINAL SCORE: 1250") {
		t.Errorf("game over screen should show the final score:\n%s", out)
	}
}
