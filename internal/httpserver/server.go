// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the Motus board.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Public endpoints: "/", "/health", "/debug/words", "/stats".
//   - Board endpoints: POST /game/new, then (token required) POST /game/key, GET /game/state.
//   - Solver endpoint: POST /solver/run plays a fresh in-process board to the end.
//
// Notes:
//   - Games live in memory; the token returned by /game/new is the only way
//     to reach one afterwards.
//   - The solution is never part of a view until the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/motus/apps/go-solver/internal/board"
	"github.com/robalobadob/motus/apps/go-solver/internal/game"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

// Config carries the server's settings.
type Config struct {
	JWTSecret      string
	TokenTTL       time.Duration
	CookieName     string
	SecureCookies  bool
	ClientOrigin   string
	DailySalt      string
	DefaultLength  int
	MaxAttempts    int
	RevealFirst    bool
	Source         words.Source // word list for /solver/run
	VerdictTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.CookieName == "" {
		c.CookieName = "motus_token"
	}
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.DailySalt == "" {
		c.DailySalt = "local_dev_salt"
	}
	if c.DefaultLength <= 0 {
		c.DefaultLength = game.DefaultLength
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = game.DefaultAttempts
	}
	if c.Source == nil {
		c.Source = words.EmbeddedSource{}
	}
	return c
}

// Server bundles router, live boards, dictionary and persistence.
type Server struct {
	r     *chi.Mux
	games *registry
	dict  *words.Dictionary
	store store.Store
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict *words.Dictionary, st store.Store, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), games: newRegistry(), dict: dict, store: st, cfg: cfg.withDefaults()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(s.cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"motus-go","endpoints":["/health","POST /game/new","POST /game/key","GET /game/state","POST /solver/run","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		per, total := s.dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total":     total,
			"lengths":   s.dict.Lengths(),
			"byLength":  per,
			"liveGames": s.games.len(),
		})
	})

	// --- board ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireGame())
		r.Post("/game/key", s.handleKey)
		r.Get("/game/state", s.handleState)
	})

	// --- solver ---
	s.r.Post("/solver/run", s.handleSolverRun)
	s.r.Get("/stats", s.handleStats)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq = board.NewGameRequest
type newGameRes = board.NewGameResponse

// pickAnswer resolves the answer for a new game, or "" if none fits.
func (s *Server) pickAnswer(req newGameReq, length int) string {
	if req.Answer != "" {
		w, ok := words.Normalize(req.Answer)
		if !ok {
			return ""
		}
		return w
	}
	if req.Mode == "daily" {
		answers := s.dict.Answers(length)
		if len(answers) == 0 {
			return ""
		}
		return answers[game.DailyIndex(time.Now(), length, s.cfg.DailySalt, len(answers))]
	}
	return s.dict.RandomAnswer(length)
}

// newGame creates a board for req. Callers register it if it should be
// reachable by token.
func (s *Server) newGame(req newGameReq) (*game.Game, error) {
	length := req.Length
	if length <= 0 {
		length = s.cfg.DefaultLength
	}
	answer := s.pickAnswer(req, length)
	if answer == "" {
		return nil, errors.New("no_words_of_length")
	}
	opts := game.Options{MaxAttempts: req.MaxAttempts, RevealFirst: s.cfg.RevealFirst}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = s.cfg.MaxAttempts
	}
	if req.RevealFirst != nil {
		opts.RevealFirst = *req.RevealFirst
	}
	return game.New(s.dict, answer, opts), nil
}

// handleNewGame creates a board and returns its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	g, err := s.newGame(req)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	s.games.save(g)
	tok, exp, err := s.signToken(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setTokenCookie(w, tok, exp)
	log.Info().Str("gameId", g.ID).Int("length", g.Length).Str("mode", req.Mode).Msg("game created")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: tok, Length: g.Length, MaxAttempts: g.MaxAttempts})
}

// handleKey presses one key on the caller's board.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req board.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	v, err := s.games.update(gameID(r), func(g *game.Game) error { return g.Press(req.Key) })
	switch {
	case errors.Is(err, errGameNotFound):
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	case errors.Is(err, game.ErrFinished):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, game.ErrInvalidKey):
		http.Error(w, `{"error":"invalid_key"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// handleState returns the caller's board.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.games.view(gameID(r))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
