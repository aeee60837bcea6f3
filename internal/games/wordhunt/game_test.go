package wordhunt

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
	"github.com/vovakirdan/wordhunt/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func step(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

// nextClickable steps until a real word will still be clickable on the next
// tick, and returns the screen position of its first letter.
func nextClickable(t *testing.T, g *Game, maxTicks int) (whcore.TrackedWord, core.Pointer) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		next := g.now().Add(g.tickDuration())
		for _, w := range g.sched.Words() {
			if w.Decoy || w.State(next) != whcore.Clickable {
				continue
			}
			if at, ok := g.sched.WordAt(w.Origin, next); !ok || at.Text != w.Text {
				continue
			}
			x, y := g.screenPos(w.Origin)
			return w, core.Pointer{X: x, Y: y}
		}
		step(g, 1)
	}
	t.Fatalf("no clickable word within %d ticks", maxTicks)
	return whcore.TrackedWord{}, core.Pointer{}
}

func click(g *Game, p core.Pointer) {
	in := core.NewInputFrame()
	in.SetClick(p.X, p.Y)
	g.Step(in)
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%37 == 0 {
			input.SetClick(i%80, 2+i%20)
		}
		if i == 100 {
			input.Set(core.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}

	s1 := core.NewScreen(80, 24)
	s2 := core.NewScreen(80, 24)
	g1.Render(s1)
	g2.Render(s2)
	if s1.String() != s2.String() {
		t.Error("rendered screens differ")
	}
}

func TestFindScores(t *testing.T) {
	g := newTestGame(7)
	before := g.sched.Remaining()

	w, p := nextClickable(t, g, 1000)
	click(g, p)

	snap := g.Snapshot()
	if snap.Correct != 1 || snap.Attempts != 1 {
		t.Errorf("correct/attempts = %d/%d, want 1/1", snap.Correct, snap.Attempts)
	}
	if snap.Remaining != before-1 {
		t.Errorf("remaining = %d, want %d", snap.Remaining, before-1)
	}
	// First find of an untimed level: no combo, no time bonus
	if snap.Score != w.Points {
		t.Errorf("score = %d, want %d", snap.Score, w.Points)
	}
	if !strings.HasPrefix(g.feedback, w.Text) {
		t.Errorf("feedback = %q, want it to start with %q", g.feedback, w.Text)
	}
}

func TestMissCountsAttempt(t *testing.T) {
	g := newTestGame(1)

	// Nothing can be clickable on the first tick
	click(g, core.Pointer{X: 40, Y: 10})

	snap := g.Snapshot()
	if snap.Attempts != 1 || snap.Correct != 0 {
		t.Errorf("correct/attempts = %d/%d, want 0/1", snap.Correct, snap.Attempts)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0", snap.Score)
	}
}

// nextDecoy steps until a decoy will still be on the board next tick.
func nextDecoy(g *Game, maxTicks int) (whcore.TrackedWord, core.Pointer, bool) {
	for i := 0; i < maxTicks; i++ {
		next := g.now().Add(g.tickDuration())
		for _, w := range g.sched.Words() {
			if !w.Decoy || !w.Visible(next) {
				continue
			}
			if at, ok := g.sched.WordAt(w.Origin, next); !ok || at.Text != w.Text {
				continue
			}
			x, y := g.screenPos(w.Origin)
			return w, core.Pointer{X: x, Y: y}, true
		}
		step(g, 1)
	}
	return whcore.TrackedWord{}, core.Pointer{}, false
}

func TestDecoyClickIsMiss(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGame(seed)
		decoy, p, ok := nextDecoy(g, 3000)
		if !ok {
			continue
		}

		before := g.Snapshot()
		click(g, p)
		after := g.Snapshot()

		if after.Attempts != before.Attempts+1 || after.Correct != before.Correct {
			t.Errorf("correct/attempts = %d/%d, want %d/%d",
				after.Correct, after.Attempts, before.Correct, before.Attempts+1)
		}
		if after.Score != before.Score {
			t.Errorf("score changed on a decoy click: %d -> %d", before.Score, after.Score)
		}
		if after.Combo != before.Combo {
			t.Errorf("combo changed on a decoy click: %d -> %d", before.Combo, after.Combo)
		}
		if !strings.Contains(g.feedback, "decoy") {
			t.Errorf("feedback = %q, want a decoy message", g.feedback)
		}
		w, ok := g.sched.WordAt(decoy.Origin, g.now())
		if !ok || w.Text != decoy.Text || !w.Decoy {
			t.Errorf("decoy %s should stay on the board, WordAt = %+v, %v", decoy.Text, w, ok)
		}
		if !w.FoundAt.IsZero() {
			t.Errorf("decoy %s was marked found", decoy.Text)
		}
		return
	}
	t.Fatal("no decoy surfaced for any seed")
}

func TestHUDClickIgnored(t *testing.T) {
	g := newTestGame(1)

	click(g, core.Pointer{X: 10, Y: 0})
	click(g, core.Pointer{X: 10, Y: 23})

	if got := g.Snapshot().Attempts; got != 0 {
		t.Errorf("attempts = %d, want 0", got)
	}
}

func TestKeyboardCursor(t *testing.T) {
	g := newTestGame(1)
	start := g.cursor

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	if g.cursor != whcore.C(start.Col+1, start.Row+1) {
		t.Errorf("cursor = %v, want %v", g.cursor, whcore.C(start.Col+1, start.Row+1))
	}

	in.Clear()
	in.Set(core.ActionUp)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.cursor.Row != g.sched.Grid().Top {
		t.Errorf("cursor row = %d, want clamped to %d", g.cursor.Row, g.sched.Grid().Top)
	}

	in.Clear()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Snapshot().Attempts != 1 {
		t.Errorf("confirm should count as an attempt")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(3)
	step(g, 10)
	before := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	step(g, 50)

	paused := g.Snapshot()
	if paused.State != StatePaused {
		t.Fatalf("state = %s, want %s", paused.State, StatePaused)
	}
	if paused.Elapsed != before.Elapsed {
		t.Errorf("elapsed moved while paused: %v -> %v", before.Elapsed, paused.Elapsed)
	}
	if !reflect.DeepEqual(paused.Words, before.Words) {
		t.Error("words changed while paused")
	}

	g.Step(in)
	step(g, 1)
	if g.Snapshot().Elapsed <= before.Elapsed {
		t.Error("clock did not resume after unpause")
	}
}

func TestLevelClear(t *testing.T) {
	g := newTestGame(42)
	targets := g.sched.Remaining()

	for g.phase == phasePlaying {
		_, p := nextClickable(t, g, 3000)
		click(g, p)
	}

	if g.phase != phaseLevelClear {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StateLevelClear)
	}

	got := g.DrainBreakdowns()
	if len(got) != 1 {
		t.Fatalf("breakdowns = %d, want 1", len(got))
	}
	b := got[0]
	if b.Level != 1 || b.WordsFound != targets || b.WordsTotal != targets {
		t.Errorf("breakdown = level %d, %d/%d words", b.Level, b.WordsFound, b.WordsTotal)
	}
	if b.Total <= 0 {
		t.Errorf("total = %d, want > 0", b.Total)
	}
	if len(g.DrainBreakdowns()) != 0 {
		t.Error("drain should clear pending breakdowns")
	}
	if h := g.History(); len(h) != 1 || h[0] != b {
		t.Errorf("history = %v, want the drained breakdown", h)
	}

	score := g.score
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	if g.level != 2 || g.phase != phasePlaying {
		t.Errorf("after confirm: level %d state %s", g.level, g.Snapshot().State)
	}
	if g.score != score {
		t.Errorf("score changed on level load: %d -> %d", score, g.score)
	}
	if g.Snapshot().Attempts != 0 {
		t.Error("attempts should reset per level")
	}
}

func TestSummaryAutoAdvances(t *testing.T) {
	g := newTestGame(42)
	for g.phase == phasePlaying {
		_, p := nextClickable(t, g, 3000)
		click(g, p)
	}

	step(g, int(SummaryDuration/g.tickDuration()))
	if g.level != 2 {
		t.Errorf("level = %d, want 2 after the summary timeout", g.level)
	}
}

func TestTimeLimitEndsCampaign(t *testing.T) {
	g := New()
	g.SetStartLevel(3)
	g.Reset(testConfig(9))

	if !g.params.HasTimeLimit() {
		t.Fatal("level 3 should be timed")
	}
	ticks := int(g.params.TimeLimit / g.tickDuration())
	step(g, ticks-1)
	if g.State().GameOver {
		t.Fatal("game over before the time limit")
	}
	step(g, 1)

	if !g.State().GameOver || g.Snapshot().State != StateGameOver {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StateGameOver)
	}
	got := g.DrainBreakdowns()
	if len(got) != 1 || got[0].WordsFound != 0 || got[0].Grade != scoring.GradeF {
		t.Errorf("breakdowns = %+v", got)
	}

	// Frozen until restart
	elapsed := g.Snapshot().Elapsed
	step(g, 10)
	if g.Snapshot().Elapsed != elapsed {
		t.Error("clock moved after game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.State().GameOver || g.level != 3 || g.score != 0 {
		t.Errorf("restart: over=%v level=%d score=%d", g.State().GameOver, g.level, g.score)
	}
}

func TestEndlessHasNoTimeLimit(t *testing.T) {
	g := NewEndless()
	g.SetStartLevel(5)
	g.Reset(testConfig(9))

	if g.params.HasTimeLimit() {
		t.Fatal("endless levels must be untimed")
	}
	step(g, 1500)
	if g.State().GameOver {
		t.Error("endless game ended without a time limit")
	}
	if g.ID() != IDEndless {
		t.Errorf("ID = %s, want %s", g.ID(), IDEndless)
	}
}

type fakeProfile struct {
	totals scoring.ProfileTotals
	calls  int
}

func (f *fakeProfile) GetTotals() (scoring.ProfileTotals, error) {
	f.calls++
	return f.totals, nil
}

func TestProfileTotalsInHUD(t *testing.T) {
	p := &fakeProfile{totals: scoring.ProfileTotals{BestScore: 4321}}
	g := New()
	g.AttachProfile(p)
	g.Reset(testConfig(1))

	if p.calls != 1 {
		t.Errorf("GetTotals calls = %d, want 1", p.calls)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Best: 4321") {
		t.Errorf("HUD = %q, want best score", screen.Row(0))
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Word Hunt 1/15", "[easy]", "Score: 0", "Words: 0/"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.Row(23), "pause") {
		t.Errorf("help line = %q", screen.Row(23))
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(5)
	step(g, 30)
	before := g.Snapshot()

	g.Resize(120, 40)
	after := g.Snapshot()
	if after.Level != before.Level || after.Score != before.Score || after.Elapsed != before.Elapsed {
		t.Errorf("resize changed progress: %+v -> %+v", before, after)
	}
	if after.Grid.Cols != 40 {
		t.Errorf("cols = %d, want 40", after.Grid.Cols)
	}

	g.Resize(4, 2)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	elapsed := g.Snapshot().Elapsed
	step(g, 10)
	if g.Snapshot().Elapsed != elapsed {
		t.Error("clock moved while the window was too small")
	}
	for _, w := range g.Snapshot().Words {
		if w.State == whcore.Pending || w.State == whcore.Clickable {
			t.Errorf("%s still visible on a tiny board", w.Text)
		}
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %s after growing back", g.Snapshot().State)
	}
}

func TestPaletteChangesGrid(t *testing.T) {
	g := New()
	g.SetPalette(whcore.PaletteSmall)
	g.Reset(testConfig(1))

	grid := g.sched.Grid()
	if grid.Cols != 80 || grid.Rows != 24 {
		t.Errorf("grid = %dx%d, want 80x24", grid.Cols, grid.Rows)
	}
	if g.Palette().Name != "small" {
		t.Errorf("palette = %s", g.Palette().Name)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDEndless} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %s, want %s", g.ID(), id)
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("%s does not implement Resizer", id)
		}
	}
}
