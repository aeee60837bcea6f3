package core_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

func TestParamsForLevelTiers(t *testing.T) {
	tests := []struct {
		level    int
		expected core.Difficulty
	}{
		{0, core.Easy},
		{1, core.Easy},
		{3, core.Easy},
		{4, core.Medium},
		{7, core.Medium},
		{8, core.Hard},
		{12, core.Hard},
		{13, core.Extreme},
		{40, core.Extreme},
	}

	for _, tc := range tests {
		p := core.ParamsForLevel(tc.level)
		if p.Difficulty != tc.expected {
			t.Errorf("ParamsForLevel(%d).Difficulty = %v, want %v", tc.level, p.Difficulty, tc.expected)
		}
	}
}

func TestParamsForLevelClampsLevel(t *testing.T) {
	p := core.ParamsForLevel(-5)
	if p.Level != 1 {
		t.Errorf("expected level 1, got %d", p.Level)
	}
}

func TestParamsTimeLimit(t *testing.T) {
	if core.ParamsForLevel(1).HasTimeLimit() || core.ParamsForLevel(2).HasTimeLimit() {
		t.Error("levels 1 and 2 should be untimed")
	}
	if got := core.ParamsForLevel(3).TimeLimit; got != 120*time.Second {
		t.Errorf("level 3 time limit = %v, want 2m", got)
	}
	if got := core.ParamsForLevel(50).TimeLimit; got != 45*time.Second {
		t.Errorf("level 50 time limit = %v, want 45s", got)
	}
}

func TestParamsRanges(t *testing.T) {
	for level := 1; level <= 30; level++ {
		p := core.ParamsForLevel(level)

		if p.MinLength > p.MaxLength {
			t.Errorf("level %d: min length %d > max length %d", level, p.MinLength, p.MaxLength)
		}
		if p.TargetWords < 4 || p.TargetWords > 12 {
			t.Errorf("level %d: target words %d out of range", level, p.TargetWords)
		}
		if p.CenterAvoidance < 0 || p.CenterAvoidance > 1 {
			t.Errorf("level %d: center avoidance %f out of range", level, p.CenterAvoidance)
		}
		if p.AnimationInterval < 40*time.Millisecond {
			t.Errorf("level %d: animation interval %v too fast", level, p.AnimationInterval)
		}
		if cd := p.Cooldown(); cd < 6*time.Second || cd > 15*time.Second {
			t.Errorf("level %d: cooldown %v outside 6s..15s", level, cd)
		}
	}
}

func TestParamsCooldownShrinks(t *testing.T) {
	prev := core.ParamsForLevel(1).Cooldown()
	for level := 2; level <= 25; level++ {
		cd := core.ParamsForLevel(level).Cooldown()
		if cd > prev {
			t.Errorf("cooldown grew from %v to %v at level %d", prev, cd, level)
		}
		prev = cd
	}
}

func TestPointValue(t *testing.T) {
	tests := []struct {
		text     string
		tier     core.Difficulty
		expected int
	}{
		{"CAT", core.Easy, 30},
		{"HOUSE", core.Medium, 60},
		{"PLANETS", core.Hard, 105},
		{"MOUNTAIN", core.Extreme, 160},
	}

	for _, tc := range tests {
		if got := core.PointValue(tc.text, tc.tier); got != tc.expected {
			t.Errorf("PointValue(%q, %v) = %d, want %d", tc.text, tc.tier, got, tc.expected)
		}
	}
}

func TestNewWordSetDecoysScoreZero(t *testing.T) {
	p := core.ParamsForLevel(1)
	words := core.NewWordSet(p, []string{"cat", "dog"}, []string{"cot"})

	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[0].Text != "CAT" || words[0].Points != 30 {
		t.Errorf("unexpected first word: %+v", words[0])
	}
	if !words[2].Decoy || words[2].Points != 0 {
		t.Errorf("decoy should carry zero points: %+v", words[2])
	}
}

func TestPaletteByName(t *testing.T) {
	p, ok := core.PaletteByName("small")
	if !ok || p.Multiplier != 2.0 {
		t.Errorf("PaletteByName(small) = %+v, %v", p, ok)
	}

	p, ok = core.PaletteByName("neon")
	if ok || p != core.PaletteLarge {
		t.Errorf("unknown palette should fall back to large, got %+v, %v", p, ok)
	}
}
