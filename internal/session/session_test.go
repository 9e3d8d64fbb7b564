package session

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/robalobadob/motus/apps/go-solver/internal/game"
	"github.com/robalobadob/motus/apps/go-solver/internal/solver"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

type dict map[string]bool

func (d dict) IsAllowed(w string) bool { return d[w] }

func dictOf(ws ...string) dict {
	d := dict{}
	for _, w := range ws {
		d[w] = true
	}
	return d
}

// fakeBoard drives a game.Game directly, with knobs for failure modes.
type fakeBoard struct {
	g           *game.Game
	dims        *Dimensions
	dimsErr     error
	hangVerdict bool
	submitted   []string
}

func (f *fakeBoard) Dimensions(ctx context.Context) (Dimensions, error) {
	if f.dimsErr != nil {
		return Dimensions{}, f.dimsErr
	}
	if f.dims != nil {
		return *f.dims, nil
	}
	return Dimensions{Length: f.g.Length, MaxAttempts: f.g.MaxAttempts}, nil
}

func (f *fakeBoard) PresetLetters(ctx context.Context) (map[int]rune, error) {
	return f.g.Preset(), nil
}

func (f *fakeBoard) RowFeedback(ctx context.Context, attempt int) ([]solver.Cell, error) {
	row := f.g.Rows[attempt]
	marks := make([]string, len(row.Marks))
	for i, m := range row.Marks {
		marks[i] = string(m)
	}
	return solver.Cells(row.Word, marks), nil
}

func (f *fakeBoard) Outcome(ctx context.Context) (Outcome, error) {
	return Outcome{Won: f.g.Won, Lost: f.g.Finished && !f.g.Won, Solution: f.g.Solution()}, nil
}

func (f *fakeBoard) Submit(ctx context.Context, word string) error {
	f.submitted = append(f.submitted, word)
	for _, r := range word {
		if err := f.g.Press(string(r)); err != nil {
			return err
		}
	}
	return f.g.Press(game.KeyEnter)
}

func (f *fakeBoard) AwaitVerdict(ctx context.Context, attempt int) (Verdict, error) {
	if f.hangVerdict {
		<-ctx.Done()
		return VerdictAccepted, ctx.Err()
	}
	if f.g.Rejected {
		return VerdictRejected, nil
	}
	return VerdictAccepted, nil
}

type failingSource struct{}

func (failingSource) Fetch(ctx context.Context) ([]string, error) {
	return nil, errors.New("network down")
}

func run(t *testing.T, b Board, src words.Source, st store.Blocklists) (Result, *Session) {
	t.Helper()
	s := New(Config{VerdictTimeout: time.Second}, b, src, st)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res, s
}

func TestRunWins(t *testing.T) {
	st := store.NewMemory()
	b := &fakeBoard{g: game.New(dictOf("avion", "canot", "lapin", "radis"), "lapin", game.Options{})}
	res, s := run(t, b, words.StaticSource{"Avion", "canot", "lapin", "radis"}, st)

	if res.Outcome != OutcomeWon || res.Solution != "lapin" {
		t.Fatalf("outcome = %s/%s, want won/lapin", res.Outcome, res.Solution)
	}
	if !reflect.DeepEqual(res.Guesses, []string{"avion", "lapin"}) || res.Attempts != 2 {
		t.Errorf("guesses = %v attempts=%d", res.Guesses, res.Attempts)
	}
	if s.Phase() != PhaseWon || !s.Phase().Terminal() {
		t.Errorf("phase = %s", s.Phase())
	}
	if !st.LoadBlocklist(context.Background(), store.KeyValid).Contains("lapin") {
		t.Errorf("won word should enter the valid cache")
	}
	if len(res.Rows) != 2 || res.Rows[1].Marks[0] != "wellPlaced" {
		t.Errorf("rows = %+v", res.Rows)
	}
	if !solver.Solved(res.Rows[1].Cells()) {
		t.Errorf("last row should round-trip as solved")
	}
	// State hands out a copy: the session's own knowledge is untouched.
	st1 := s.State()
	if st1.Pattern(5) != "lapin" {
		t.Errorf("final pattern = %s", st1.Pattern(5))
	}
	st1.Absent.Add('l')
	delete(st1.WellPlaced, 0)
	if st2 := s.State(); st2.Absent.Contains('l') || st2.WellPlaced[0] != 'l' || !st2.Consistent() {
		t.Errorf("mutating State() leaked into the session: %s", st2.Describe(5))
	}
}

func TestRejectedWordIsBlocklistedWithoutCost(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	b := &fakeBoard{g: game.New(dictOf("lapin"), "lapin", game.Options{})}
	res, _ := run(t, b, words.StaticSource{"zarbi", "lapin"}, st)

	if res.Outcome != OutcomeWon || res.Attempts != 1 {
		t.Fatalf("outcome=%s attempts=%d, rejection must not cost an attempt", res.Outcome, res.Attempts)
	}
	if !reflect.DeepEqual(res.Rejected, []string{"zarbi"}) {
		t.Errorf("rejected = %v", res.Rejected)
	}
	if !st.LoadBlocklist(ctx, store.KeyInvalid).Contains("zarbi") {
		t.Errorf("rejected word should be persisted")
	}

	// A later session never offers the blocklisted word.
	b2 := &fakeBoard{g: game.New(dictOf("lapin"), "lapin", game.Options{})}
	run(t, b2, words.StaticSource{"zarbi", "lapin"}, st)
	if !reflect.DeepEqual(b2.submitted, []string{"lapin"}) {
		t.Errorf("second session submitted %v", b2.submitted)
	}
}

func TestExhaustedWhenNothingMatches(t *testing.T) {
	st := store.NewMemory()
	b := &fakeBoard{g: game.New(dictOf("avion", "radis", "lapin"), "lapin", game.Options{RevealFirst: true})}
	res, s := run(t, b, words.StaticSource{"avion", "radis"}, st)

	if res.Outcome != OutcomeExhausted || s.Phase() != PhaseExhausted {
		t.Fatalf("outcome=%s phase=%s", res.Outcome, s.Phase())
	}
	if len(b.submitted) != 0 || res.Solution != "" {
		t.Errorf("nothing should be submitted or recorded, got %v / %q", b.submitted, res.Solution)
	}
	if st.LoadBlocklist(context.Background(), store.KeyValid).Cardinality() != 0 {
		t.Errorf("exhausted session must not record a word")
	}
}

func TestFallbackReplaysHistoryThenLoses(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	d := dictOf("avion", "canot", "lapin")
	b := &fakeBoard{g: game.New(d, "lapin", game.Options{MaxAttempts: 3})}
	res, s := run(t, b, words.StaticSource{"avion", "canot"}, st)

	if res.Outcome != OutcomeLost || s.Phase() != PhaseLost {
		t.Fatalf("outcome=%s phase=%s", res.Outcome, s.Phase())
	}
	if !reflect.DeepEqual(b.submitted, []string{"avion", "avion", "avion"}) {
		t.Errorf("submitted = %v", b.submitted)
	}
	if res.Solution != "lapin" {
		t.Errorf("solution = %q", res.Solution)
	}
	if !st.LoadBlocklist(ctx, store.KeyValid).Contains("lapin") {
		t.Fatalf("revealed solution should enter the valid cache")
	}

	// The cached solution makes the word available next time.
	b2 := &fakeBoard{g: game.New(d, "lapin", game.Options{MaxAttempts: 3})}
	res2, _ := run(t, b2, words.StaticSource{"avion", "canot"}, st)
	if res2.Outcome != OutcomeWon {
		t.Errorf("second session outcome = %s, want won", res2.Outcome)
	}
}

func TestStateBeforeRun(t *testing.T) {
	b := &fakeBoard{g: game.New(nil, "lapin", game.Options{})}
	if New(Config{}, b, words.StaticSource{"lapin"}, store.NewMemory()).State() != nil {
		t.Errorf("State before Run should be nil")
	}
}

func TestConfigErrors(t *testing.T) {
	g := game.New(nil, "lapin", game.Options{})
	cases := map[string]*fakeBoard{
		"unreadable": {g: g, dimsErr: errors.New("grid missing")},
		"zero":       {g: g, dims: &Dimensions{Length: 0, MaxAttempts: 6}},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(Config{}, b, words.StaticSource{"lapin"}, store.NewMemory()).Run(context.Background())
			if !errors.Is(err, ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestEmptyCorpus(t *testing.T) {
	b := &fakeBoard{g: game.New(nil, "lapin", game.Options{})}
	_, err := New(Config{}, b, words.StaticSource{"maison", "l'eau"}, store.NewMemory()).Run(context.Background())
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestSourceFailurePropagates(t *testing.T) {
	b := &fakeBoard{g: game.New(nil, "lapin", game.Options{})}
	_, err := New(Config{}, b, failingSource{}, store.NewMemory()).Run(context.Background())
	if err == nil || errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want a fetch error", err)
	}
}

func TestVerdictTimeoutCountsAsAccepted(t *testing.T) {
	b := &fakeBoard{g: game.New(dictOf("lapin"), "lapin", game.Options{}), hangVerdict: true}
	s := New(Config{VerdictTimeout: 10 * time.Millisecond}, b, words.StaticSource{"lapin"}, store.NewMemory())
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeWon {
		t.Errorf("outcome = %s", res.Outcome)
	}
}

func TestCancellationAbortsSession(t *testing.T) {
	b := &fakeBoard{g: game.New(dictOf("lapin"), "lapin", game.Options{}), hangVerdict: true}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := New(Config{VerdictTimeout: time.Minute}, b, words.StaticSource{"lapin"}, store.NewMemory()).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context deadline", err)
	}
}

func TestResultRecord(t *testing.T) {
	r := Result{ID: "id", Length: 5, Outcome: OutcomeWon, Attempts: 2, Guesses: []string{"a", "b"}, Solution: "b"}
	rec := r.Record()
	if rec.ID != "id" || rec.Outcome != "won" || rec.Attempts != 2 || len(rec.Guesses) != 2 {
		t.Errorf("Record = %+v", rec)
	}
}
