// apps/go-solver/internal/httpserver/routes_solver.go
//
// Solver routes:
//   - POST /solver/run → play one session against a fresh in-process board
//   - GET  /stats      → outcome summary of recorded sessions
//
// The solver shares the server's store, so blocklists learned here carry
// over to later runs.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/motus/apps/go-solver/internal/board"
	"github.com/robalobadob/motus/apps/go-solver/internal/session"
)

// solverRunReq is the request payload for /solver/run.
type solverRunReq = board.NewGameRequest

// handleSolverRun creates a board, solves it, records and returns the result.
func (s *Server) handleSolverRun(w http.ResponseWriter, r *http.Request) {
	var req solverRunReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	g, err := s.newGame(req)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	b := board.NewLocal(g, board.Options{KeyDelay: -1, PollInterval: 5 * time.Millisecond})
	sess := session.New(session.Config{VerdictTimeout: s.cfg.VerdictTimeout}, b, s.cfg.Source, s.store)
	res, err := sess.Run(r.Context())
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("solver run failed")
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusUnprocessableEntity)
		return
	}
	if err := s.store.RecordSession(r.Context(), res.Record()); err != nil {
		log.Warn().Err(err).Str("session", res.ID).Msg("record session")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleStats returns the session summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sum, err := s.store.Summary(r.Context())
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sum)
}
