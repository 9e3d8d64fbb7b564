// apps/go-solver/internal/session/session.go
//
// Attempt loop for one game.
//
// Phases:
//   Idle → Guessing → FeedbackPending → Rejected         → Guessing
//                                     → AcceptedContinue → Guessing | Lost
//                                     → AcceptedWon      → Won
//   Guessing with no candidate and no history            → Exhausted
//
// Responsibilities:
//   - Build the corpus (word source + valid cache, minus invalid blocklist)
//     and the constraint state from the board's initial snapshot.
//   - Pick a word (selector, else the earliest accepted word), type it, wait
//     for the board's verdict under a timeout.
//   - Rejected words go to the invalid blocklist and leave the corpus without
//     costing an attempt. Accepted rows feed the updater.
//   - Wins and revealed solutions go to the valid cache.
//
// Only board/environment failures are returned as errors; rejection,
// exhaustion and persistence hiccups are logged and absorbed.

package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/motus/apps/go-solver/internal/solver"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

// DefaultVerdictTimeout bounds the wait for accept/reject after a submission.
const DefaultVerdictTimeout = 3 * time.Second

// Phase is a state of the attempt loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGuessing
	PhaseFeedbackPending
	PhaseRejected
	PhaseAcceptedContinue
	PhaseAcceptedWon
	PhaseWon
	PhaseLost
	PhaseExhausted
)

var phaseNames = [...]string{
	"idle", "guessing", "feedback_pending", "rejected",
	"accepted_continue", "accepted_won", "won", "lost", "exhausted",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Terminal reports whether the loop stops in p.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseExhausted
}

// Outcome strings, shared with store.Record.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeExhausted = "exhausted"
)

// Config tunes a session.
type Config struct {
	VerdictTimeout time.Duration
}

// Row is one accepted row as the board coloured it.
type Row struct {
	Word  string   `json:"word"`
	Marks []string `json:"marks"`
}

// Cells converts r back to solver feedback.
func (r Row) Cells() []solver.Cell { return solver.Cells(r.Word, r.Marks) }

// Result describes a finished session.
type Result struct {
	ID        string        `json:"id"`
	Length    int           `json:"length"`
	Outcome   string        `json:"outcome"`
	Attempts  int           `json:"attempts"`
	Guesses   []string      `json:"guesses"`
	Rejected  []string      `json:"rejected,omitempty"`
	Solution  string        `json:"solution,omitempty"`
	Rows      []Row         `json:"rows"`
	StartedAt time.Time     `json:"startedAt"`
	Elapsed   time.Duration `json:"elapsedNs"`
}

// Record converts r for a store.Recorder.
func (r Result) Record() store.Record {
	return store.Record{
		ID:        r.ID,
		Length:    r.Length,
		Outcome:   r.Outcome,
		Attempts:  r.Attempts,
		Solution:  r.Solution,
		Guesses:   r.Guesses,
		StartedAt: r.StartedAt,
		Elapsed:   r.Elapsed,
	}
}

// Session plays one game. It owns its corpus and constraint state and is
// not safe for concurrent use; call Run once.
type Session struct {
	id     string
	cfg    Config
	board  Board
	source words.Source
	lists  store.Blocklists
	log    zerolog.Logger

	phase   Phase
	corpus  *words.Corpus
	state   *solver.State
	history []string
	invalid mapset.Set[string]
	valid   mapset.Set[string]
}

// New wires a session. A zero VerdictTimeout uses DefaultVerdictTimeout.
func New(cfg Config, b Board, src words.Source, lists store.Blocklists) *Session {
	if cfg.VerdictTimeout <= 0 {
		cfg.VerdictTimeout = DefaultVerdictTimeout
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		cfg:    cfg,
		board:  b,
		source: src,
		lists:  lists,
		log:    log.With().Str("session", id).Logger(),
	}
}

// ID is the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Phase is the current loop phase.
func (s *Session) Phase() Phase { return s.phase }

// State returns a copy of the constraint state, or nil before Run.
func (s *Session) State() *solver.State {
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

// Run plays until the game is won, lost or no candidate is left.
func (s *Session) Run(ctx context.Context) (res Result, err error) {
	res = Result{ID: s.id, StartedAt: time.Now()}
	defer func() { res.Elapsed = time.Since(res.StartedAt) }()

	dims, err := s.setup(ctx)
	if err != nil {
		return res, err
	}
	res.Length = dims.Length

	attempt := 0
	for attempt < dims.MaxAttempts {
		s.transition(PhaseGuessing)
		word, fallback, ok := s.next()
		if !ok {
			s.transition(PhaseExhausted)
			res.Outcome = OutcomeExhausted
			res.Attempts = attempt
			return res, nil
		}

		if err := s.board.Submit(ctx, word); err != nil {
			return res, fmt.Errorf("submit %q: %w", word, err)
		}
		s.transition(PhaseFeedbackPending)
		verdict, err := s.await(ctx, attempt)
		if err != nil {
			return res, err
		}

		if verdict == VerdictRejected {
			s.transition(PhaseRejected)
			s.reject(ctx, word, fallback)
			res.Rejected = append(res.Rejected, word)
			continue
		}

		cells, err := s.board.RowFeedback(ctx, attempt)
		if err != nil {
			return res, fmt.Errorf("read row %d: %w", attempt, err)
		}
		solver.ApplyFeedback(s.state, cells)
		s.remember(word)
		res.Guesses = append(res.Guesses, word)
		res.Rows = append(res.Rows, toRow(word, cells))
		attempt++
		res.Attempts = attempt

		out, err := s.board.Outcome(ctx)
		if err != nil {
			return res, fmt.Errorf("read outcome: %w", err)
		}
		if out.Won || solver.Solved(cells) {
			s.transition(PhaseAcceptedWon)
			s.learnValid(ctx, word)
			res.Outcome = OutcomeWon
			res.Solution = word
			s.transition(PhaseWon)
			return res, nil
		}
		s.transition(PhaseAcceptedContinue)
		s.log.Debug().
			Int("attempt", attempt).
			Str("state", s.state.Describe(dims.Length)).
			Int("candidates", solver.Candidates(s.corpus.Words(), s.state)).
			Msg("feedback applied")
		if out.Lost {
			break
		}
	}

	out, err := s.board.Outcome(ctx)
	if err != nil {
		return res, fmt.Errorf("read outcome: %w", err)
	}
	res.Outcome = OutcomeLost
	if sol, ok := words.Normalize(out.Solution); ok {
		res.Solution = sol
		s.learnValid(ctx, sol)
	}
	s.transition(PhaseLost)
	return res, nil
}

// setup reads the initial board snapshot and builds corpus and state.
func (s *Session) setup(ctx context.Context) (Dimensions, error) {
	s.transition(PhaseIdle)

	dims, err := s.board.Dimensions(ctx)
	if err != nil {
		return dims, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if dims.Length <= 0 || dims.MaxAttempts <= 0 {
		return dims, fmt.Errorf("%w: length=%d maxAttempts=%d", ErrConfig, dims.Length, dims.MaxAttempts)
	}
	preset, err := s.board.PresetLetters(ctx)
	if err != nil {
		return dims, fmt.Errorf("%w: preset letters: %w", ErrConfig, err)
	}

	s.invalid = s.lists.LoadBlocklist(ctx, store.KeyInvalid)
	s.valid = s.lists.LoadBlocklist(ctx, store.KeyValid)

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return dims, fmt.Errorf("fetch word list: %w", err)
	}
	known := s.valid.ToSlice()
	sort.Strings(known)

	s.corpus = words.BuildCorpus(append(known, raw...), dims.Length, s.invalid)
	if s.corpus.Len() == 0 {
		return dims, fmt.Errorf("%w: length %d", ErrEmptyCorpus, dims.Length)
	}
	s.state = solver.NewState(preset)

	s.log.Info().
		Int("length", dims.Length).
		Int("maxAttempts", dims.MaxAttempts).
		Int("corpus", s.corpus.Len()).
		Int("invalid", s.invalid.Cardinality()).
		Str("preset", s.state.Pattern(dims.Length)).
		Msg("session ready")
	return dims, nil
}

// next picks the word to play. fallback is true when it comes from history.
func (s *Session) next() (word string, fallback, ok bool) {
	if w, found := solver.Select(s.corpus.Words(), s.state, s.history); found {
		return w, false, true
	}
	if len(s.history) > 0 {
		s.log.Warn().Str("word", s.history[0]).Msg("no candidate left, replaying first accepted word")
		return s.history[0], true, true
	}
	s.log.Warn().Msg("no candidate left and nothing to fall back on")
	return "", false, false
}

// await waits for the verdict. A timeout without a rejection signal counts
// as acceptance; cancellation of ctx ends the session.
func (s *Session) await(ctx context.Context, attempt int) (Verdict, error) {
	vctx, cancel := context.WithTimeout(ctx, s.cfg.VerdictTimeout)
	defer cancel()

	v, err := s.board.AwaitVerdict(vctx, attempt)
	if err == nil {
		return v, nil
	}
	if ctx.Err() != nil {
		return v, ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		s.log.Warn().Int("attempt", attempt).Dur("timeout", s.cfg.VerdictTimeout).Msg("no verdict in time, assuming accepted")
		return VerdictAccepted, nil
	}
	return v, fmt.Errorf("await verdict: %w", err)
}

// reject blocklists word and drops it from the corpus (and from history
// when it was a fallback replay).
func (s *Session) reject(ctx context.Context, word string, fallback bool) {
	s.log.Info().Str("word", word).Msg("word rejected by board")
	s.invalid.Add(word)
	if err := s.lists.SaveBlocklist(ctx, store.KeyInvalid, s.invalid); err != nil {
		s.log.Warn().Err(err).Msg("save invalid blocklist")
	}
	if s.valid.Contains(word) {
		s.valid.Remove(word)
		if err := s.lists.SaveBlocklist(ctx, store.KeyValid, s.valid); err != nil {
			s.log.Warn().Err(err).Msg("save valid cache")
		}
	}
	s.corpus.Remove(word)
	if fallback {
		for i, h := range s.history {
			if h == word {
				s.history = append(s.history[:i], s.history[i+1:]...)
				break
			}
		}
	}
}

// remember appends word to history once.
func (s *Session) remember(word string) {
	for _, h := range s.history {
		if h == word {
			return
		}
	}
	s.history = append(s.history, word)
}

// learnValid adds word to the persisted valid cache.
func (s *Session) learnValid(ctx context.Context, word string) {
	if s.valid.Contains(word) {
		return
	}
	s.valid.Add(word)
	if err := s.lists.SaveBlocklist(ctx, store.KeyValid, s.valid); err != nil {
		s.log.Warn().Err(err).Msg("save valid cache")
	}
}

func (s *Session) transition(p Phase) {
	s.log.Debug().Stringer("from", s.phase).Stringer("to", p).Msg("phase")
	s.phase = p
}

func toRow(word string, cells []solver.Cell) Row {
	r := Row{Word: word, Marks: make([]string, len(cells))}
	for i, c := range cells {
		r.Marks[i] = c.Status.String()
	}
	return r
}
