package road

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func release(b core.Button) core.InputFrame {
	in := core.NewInputFrame()
	in.Release(b)
	return in
}

// idle steps the game n ticks without input and returns the first finished run.
func idle(g *Game, n int) *core.RunResult {
	var finished *core.RunResult
	for i := 0; i < n; i++ {
		if res := g.Step(core.NewInputFrame()); res.Finished != nil && finished == nil {
			finished = res.Finished
		}
	}
	return finished
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", GameID, err)
	}
	if g.Title() != "Hopper" {
		t.Errorf("Title() = %q, expected Hopper", g.Title())
	}
}

func TestGameDeterministicRoad(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	if a.Manager().Road().String() != b.Manager().Road().String() {
		t.Errorf("same seed produced different roads:\n%s\n%s", a.Manager().Road(), b.Manager().Road())
	}
	if a.Manager().Road().Len() != 50 {
		t.Errorf("Road().Len() = %d, expected 50", a.Manager().Road().Len())
	}
}

func TestGameStartGatesInput(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(release(core.ButtonPrimary))
	if g.Player().State() != MoveIdle {
		t.Fatal("hop accepted on the title screen")
	}

	g.Step(frame(core.ActionStart))
	if g.Manager().State() != StatePlaying {
		t.Fatalf("State() = %v after start, expected playing", g.Manager().State())
	}

	g.Step(release(core.ButtonPrimary))
	if g.Player().State() != MoveIdle {
		t.Fatal("hop accepted during the start delay")
	}

	idle(g, 10)
	g.Step(release(core.ButtonPrimary))
	if g.Player().State() != MoveJumping {
		t.Fatal("hop refused after the start delay")
	}
}

func TestGameFallAndReplay(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionStart))
	idle(g, 10)
	g.Manager().setRoad(ParseRoad("##_##"))

	g.Step(release(core.ButtonPrimary))
	if res := idle(g, 30); res != nil {
		t.Fatalf("run finished on a solid tile: %+v", res)
	}
	g.Step(release(core.ButtonPrimary))
	res := idle(g, 30)

	if res == nil {
		t.Fatal("no finished run after landing on the gap")
	}
	if res.Outcome != core.OutcomeFell || res.Steps != 2 || res.Elapsed <= 0 {
		t.Errorf("finished = %+v, expected fell after 2 steps", res)
	}
	if st := g.State(); !st.GameOver || st.Score != 2 {
		t.Errorf("State() = %+v, expected game over with score 2", st)
	}

	// Start is ignored on the end screen
	g.Step(frame(core.ActionStart))
	if g.Manager().State() != StateEnd {
		t.Fatalf("State() = %v after start on end screen", g.Manager().State())
	}

	g.Step(frame(core.ActionReplay))
	if g.Manager().State() != StateInit {
		t.Errorf("State() = %v after replay, expected init", g.Manager().State())
	}
}

func TestGameReplayIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionStart))
	g.Step(frame(core.ActionReplay))

	if g.Manager().State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", g.Manager().State())
	}
}

func TestGameClearsRoad(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionStart))
	idle(g, 10)
	g.Manager().setRoad(ParseRoad("###"))

	g.Step(release(core.ButtonSecondary))
	idle(g, 30)
	g.Step(release(core.ButtonSecondary))
	res := idle(g, 30)

	if res == nil || res.Outcome != core.OutcomeCleared {
		t.Fatalf("finished = %+v, expected cleared", res)
	}
	if g.Manager().State() != StateInit || !g.HUD().StartMenu.Visible {
		t.Error("not back on the title screen after clearing the road")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "H O P P E R") {
		t.Error("title panel not drawn")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, DefaultTileSprite.Glyph) {
		t.Error("road not drawn")
	}

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "H O P P E R") {
		t.Error("title panel drawn while playing")
	}
	if !strings.Contains(screen.Row(0), "Steps: 0") {
		t.Errorf("HUD row = %q, expected the step counter", screen.Row(0))
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(10, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too") {
		t.Errorf("expected a size warning, got %q", screen.String())
	}
}

func TestGameResetRewindsScheduler(t *testing.T) {
	g := newTestGame(t, 1)
	sched := g.sched
	g.Step(frame(core.ActionStart))
	if sched.Pending() != 1 {
		t.Fatalf("Pending() = %d after start, expected the input timer", sched.Pending())
	}

	g.Reset(core.DefaultConfig())
	if g.sched != sched {
		t.Error("Reset replaced the scheduler instead of rewinding it")
	}
	if sched.Pending() != 0 || sched.Now() != 0 {
		t.Errorf("after Reset: Pending() = %d, Now() = %v, expected 0, 0", sched.Pending(), sched.Now())
	}
	if g.Manager().State() != StateInit {
		t.Errorf("State() = %v after Reset, expected init", g.Manager().State())
	}
}

func TestGameHopPeak(t *testing.T) {
	g := newTestGame(t, 1)
	g.Manager().setRoad(ParseRoad("#####"))
	g.Step(frame(core.ActionStart))
	idle(g, 10)

	tests := []struct {
		name   string
		button core.Button
		want   int
	}{
		{"one tile", core.ButtonPrimary, max(g.cfg.View.JumpHeight/2, 1)},
		{"two tiles", core.ButtonSecondary, g.cfg.View.JumpHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Step(release(tt.button))
			if g.Player().State() != MoveJumping {
				t.Fatal("hop refused")
			}
			if got := g.hopPeak(); got != tt.want {
				t.Errorf("hopPeak() = %d, expected %d", got, tt.want)
			}
			idle(g, 60)
		})
	}
}
