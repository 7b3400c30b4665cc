package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gradius/internal/core"
	"github.com/vovakirdan/tui-gradius/internal/game"
)

func TestSimulateRespectsTickBudget(t *testing.T) {
	g := game.New(42)
	sum := simulate(g, 30, 0)

	if sum.Ticks > 30 {
		t.Errorf("ticks = %d, want at most 30", sum.Ticks)
	}
	if sum.Events[core.EventBulletFired] != 0 {
		t.Error("fire-every 0 should never fire")
	}
}

func TestSimulateFiresOnCadence(t *testing.T) {
	g := game.New(7)
	sum := simulate(g, 12, 4)

	if sum.Ticks == 12 && sum.Events[core.EventBulletFired] != 3 {
		t.Errorf("bullets fired = %d, want 3", sum.Events[core.EventBulletFired])
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := simulate(game.New(99), 300, 3)
	b := simulate(game.New(99), 300, 3)

	if a.State != b.State || a.Ticks != b.Ticks {
		t.Errorf("same seed diverged: %+v vs %+v", a.State, b.State)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, 5, simSummary{
		Ticks:  10,
		State:  core.GameState{Score: 150, Lives: 2},
		Events: map[core.EventKind]int{core.EventBonusCollected: 1},
	})

	out := buf.String()
	for _, want := range []string{"Seed:   5", "Score:  150", "Lives:  2", "bonus_collected  1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
