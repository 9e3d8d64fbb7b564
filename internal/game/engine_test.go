package game

import (
	"reflect"
	"testing"
	"time"
)

type listDict map[string]bool

func (d listDict) IsAllowed(w string) bool { return d[w] }

func typeWord(t *testing.T, g *Game, w string) {
	t.Helper()
	for _, r := range w {
		if err := g.Press(string(r)); err != nil {
			t.Fatalf("press %c: %v", r, err)
		}
	}
	if err := g.Press(KeyEnter); err != nil {
		t.Fatalf("enter: %v", err)
	}
}

func TestScoreGuess(t *testing.T) {
	cases := []struct {
		answer, guess string
		want          []Mark
	}{
		{"lapin", "lapin", []Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}},
		{"lapin", "canot", []Mark{MarkMiss, MarkHit, MarkPresent, MarkMiss, MarkMiss}},
		// One a in the answer: the second a in the guess is a miss.
		{"radis", "sabaa", []Mark{MarkPresent, MarkHit, MarkMiss, MarkMiss, MarkMiss}},
		{"pomme", "mamma", []Mark{MarkMiss, MarkMiss, MarkHit, MarkHit, MarkMiss}},
		{"pomme", "mimes", []Mark{MarkPresent, MarkMiss, MarkHit, MarkPresent, MarkMiss}},
		// Answers outside a-z score without panicking.
		{"l'ap", "laap", []Mark{MarkHit, MarkMiss, MarkHit, MarkHit}},
	}
	for _, tc := range cases {
		if got := scoreGuess(tc.answer, tc.guess); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("scoreGuess(%s,%s) = %v, want %v", tc.answer, tc.guess, got, tc.want)
		}
	}
}

func TestPressAndWin(t *testing.T) {
	g := New(listDict{"canot": true, "lapin": true}, "lapin", Options{})
	typeWord(t, g, "canot")
	if len(g.Rows) != 1 || g.State() != "playing" {
		t.Fatalf("after first row: rows=%d state=%s", len(g.Rows), g.State())
	}
	if g.Solution() != "" {
		t.Errorf("solution must stay hidden while playing")
	}
	typeWord(t, g, "lapin")
	if !g.Won || g.State() != "won" {
		t.Errorf("expected win, state=%s", g.State())
	}
	if err := g.Press("a"); err != ErrFinished {
		t.Errorf("press after finish = %v, want ErrFinished", err)
	}
}

func TestRejectedWordConsumesNoAttempt(t *testing.T) {
	g := New(listDict{"lapin": true}, "lapin", Options{MaxAttempts: 2})
	typeWord(t, g, "zzzzz")
	if !g.Rejected {
		t.Fatalf("unknown word should be rejected")
	}
	if len(g.Rows) != 0 || len(g.Typed) != 0 {
		t.Errorf("rejection must not consume an attempt nor keep typed letters")
	}
	if err := g.Press("l"); err != nil {
		t.Fatal(err)
	}
	if g.Rejected {
		t.Errorf("next key press should clear the rejection flag")
	}
}

func TestLoseRevealsSolution(t *testing.T) {
	g := New(listDict{"canot": true, "radis": true}, "lapin", Options{MaxAttempts: 2})
	typeWord(t, g, "canot")
	typeWord(t, g, "radis")
	if !g.Finished || g.Won {
		t.Fatalf("expected loss, state=%s", g.State())
	}
	if g.Solution() != "lapin" {
		t.Errorf("Solution = %q", g.Solution())
	}
}

func TestTypingEdges(t *testing.T) {
	g := New(nil, "lapin", Options{RevealFirst: true})
	if got := g.Preset(); got[0] != 'l' || len(got) != 1 {
		t.Errorf("Preset = %v", got)
	}
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		_ = g.Press(k)
	}
	if string(g.Typed) != "abcde" {
		t.Errorf("typed = %q, extra letters should be ignored", string(g.Typed))
	}
	_ = g.Press(KeyBackspace)
	_ = g.Press(KeyEnter)
	if len(g.Rows) != 0 || string(g.Typed) != "abcd" {
		t.Errorf("enter on an incomplete row must be ignored")
	}
	if err := g.Press("1"); err != ErrInvalidKey {
		t.Errorf("Press(1) = %v", err)
	}
	if New(nil, "lapin", Options{}).Preset()[0] != 0 {
		t.Errorf("no preset without RevealFirst")
	}
}

func TestDailyIndex(t *testing.T) {
	d := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	a := DailyIndex(d, 5, "salt", 1000)
	if b := DailyIndex(d.Add(time.Hour), 5, "salt", 1000); a != b {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 1000 {
		t.Errorf("index out of range: %d", a)
	}
	if DailyIndex(d, 5, "salt", 0) != 0 {
		t.Errorf("n=0 should give 0")
	}
	if got := DailyKey(d, 7); got != "2026-10-15/7" {
		t.Errorf("DailyKey = %s", got)
	}

	// Each length hashes its own key, so lengths do not share a daily index.
	seen := map[int]bool{}
	for length := 5; length <= 10; length++ {
		seen[DailyIndex(d, length, "salt", 1<<30)] = true
	}
	if len(seen) < 2 {
		t.Errorf("all lengths gave the same index")
	}
}

func TestView(t *testing.T) {
	g := New(listDict{"canot": true}, "lapin", Options{RevealFirst: true, MaxAttempts: 1})
	v := g.View()
	if v.Preset != "l...." || v.State != "playing" || v.Solution != "" {
		t.Errorf("initial view = %+v", v)
	}
	typeWord(t, g, "canot")
	v = g.View()
	if !v.Lost || v.Won || v.Solution != "lapin" || len(v.Rows) != 1 {
		t.Errorf("final view = %+v", v)
	}
	v.Rows[0].Marks[0] = MarkHit
	if g.Rows[0].Marks[0] == MarkHit {
		t.Errorf("view must not alias game rows")
	}
}
