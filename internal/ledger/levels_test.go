package ledger

import "testing"

func TestLevelDerivation(t *testing.T) {
	cases := []struct {
		xp       int
		level    int
		progress int
	}{
		{0, 1, 0},
		{25, 1, 25},
		{99, 1, 99},
		{100, 2, 0},
		{175, 2, 75},
		{1000, 11, 0},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.level {
			t.Fatalf("LevelForXP(%d)=%d, want %d", c.xp, got, c.level)
		}
		if got := XPProgress(c.xp); got != c.progress {
			t.Fatalf("XPProgress(%d)=%d, want %d", c.xp, got, c.progress)
		}
	}
}

func TestXPProgressStaysInRange(t *testing.T) {
	for xp := 0; xp <= 1000; xp += 5 {
		p := XPProgress(xp)
		if p < 0 || p >= XPPerLevel {
			t.Fatalf("XPProgress(%d)=%d out of [0,%d)", xp, p, XPPerLevel)
		}
		if want := xp/XPPerLevel + 1; LevelForXP(xp) != want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", xp, LevelForXP(xp), want)
		}
	}
}

func TestNegativeXPTreatedAsZero(t *testing.T) {
	if got := LevelForXP(-10); got != 1 {
		t.Fatalf("LevelForXP(-10)=%d, want 1", got)
	}
	if got := XPProgress(-10); got != 0 {
		t.Fatalf("XPProgress(-10)=%d, want 0", got)
	}
}
