// apps/go-solver/internal/board/remote.go
//
// HTTP backend: plays a game hosted by the board server.
//
//   POST /game/new   → create a game, receive its bearer token
//   POST /game/key   → press one key
//   GET  /game/state → snapshot
//
// Every request carries the token in the Authorization header.

package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/robalobadob/motus/apps/go-solver/internal/game"
)

// NewGameRequest is the body of POST /game/new.
type NewGameRequest struct {
	Length      int    `json:"length,omitempty"`
	MaxAttempts int    `json:"maxAttempts,omitempty"`
	Mode        string `json:"mode,omitempty"`   // "random" | "daily"
	Answer      string `json:"answer,omitempty"` // fixed answer (testing)
	RevealFirst *bool  `json:"revealFirst,omitempty"`
}

// NewGameResponse is the reply to POST /game/new.
type NewGameResponse struct {
	GameID      string `json:"gameId"`
	Token       string `json:"token"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
}

// KeyRequest is the body of POST /game/key.
type KeyRequest struct {
	Key string `json:"key"`
}

// Remote is a Board backed by the HTTP board server.
type Remote struct {
	*Board
	client *remoteClient
}

type remoteClient struct {
	base   string
	http   *http.Client
	token  string
	gameID string
}

// NewRemote returns a Remote for the server at baseURL. Call Start before use.
// A nil client gets a 10s-timeout default.
func NewRemote(baseURL string, client *http.Client, opts Options) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	rc := &remoteClient{base: strings.TrimRight(baseURL, "/"), http: client}
	return &Remote{Board: &Board{be: rc, opts: opts.withDefaults()}, client: rc}
}

// Start creates a game on the server and keeps its token.
func (r *Remote) Start(ctx context.Context, req NewGameRequest) (NewGameResponse, error) {
	var res NewGameResponse
	if err := r.client.do(ctx, http.MethodPost, "/game/new", req, &res); err != nil {
		return res, err
	}
	if res.Token == "" {
		return res, fmt.Errorf("board server returned no token")
	}
	r.client.token = res.Token
	r.client.gameID = res.GameID
	return res, nil
}

// GameID is the server-side ID of the current game.
func (r *Remote) GameID() string { return r.client.gameID }

func (c *remoteClient) snapshot(ctx context.Context) (game.View, error) {
	var v game.View
	err := c.do(ctx, http.MethodGet, "/game/state", nil, &v)
	return v, err
}

func (c *remoteClient) press(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, "/game/key", KeyRequest{Key: key}, nil)
}

func (c *remoteClient) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%s %s: %d %s", method, path, res.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
