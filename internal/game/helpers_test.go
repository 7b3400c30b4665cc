package game

import "github.com/vovakirdan/tui-gradius/internal/core"

// scriptedRoller replays fixed rolls, repeating the last one forever.
type scriptedRoller struct {
	rolls []int
	next  int
}

func (r *scriptedRoller) Intn(n int) int {
	if len(r.rolls) == 0 {
		return n - 1
	}
	v := r.rolls[len(r.rolls)-1]
	if r.next < len(r.rolls) {
		v = r.rolls[r.next]
		r.next++
	}
	return v % n
}

// quietGame returns a game that is playing and never spawns anything.
func quietGame() *Game {
	g := NewWithRoller(&scriptedRoller{rolls: []int{99}})
	g.Start()
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(idle())
	}
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
