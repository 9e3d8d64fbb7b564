// apps/go-solver/internal/config/config.go
//
// Process configuration read from the environment (a `.env` file is loaded
// by main via godotenv before Load runs).
//
//   LOG_LEVEL           zerolog level                   (info)
//   PORT                board server port               (5175)
//   STORE               sqlite | file | memory          (sqlite)
//   DB_PATH             SQLite file                     (data/motus.db)
//   STORE_DIR           directory for the file store    (data)
//   WORDS_FILE          local word list, one per line
//   WORDS_URL           remote word list (wins over WORDS_FILE)
//   BOARD_URL           board server for `play --remote` (http://localhost:5175)
//   WORD_LENGTH         default board length            (5)
//   MAX_ATTEMPTS        default rows per board          (6)
//   KEY_DELAY_MS        pause after each keystroke      (50)
//   POLL_INTERVAL_MS    verdict polling period          (100)
//   VERDICT_TIMEOUT_MS  wait for accept/reject          (3000)
//   JWT_SECRET          board token secret
//   JWT_EXPIRES_HOURS   board token lifetime            (24)
//   DAILY_SALT          daily answer salt
//   CLIENT_ORIGIN       CORS origin                     (http://localhost:5173)
//   REVEAL_FIRST        show the first letter on new boards (true)
//
// Malformed numbers fall back to the default with a warning.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/motus/apps/go-solver/internal/board"
	"github.com/robalobadob/motus/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/motus/apps/go-solver/internal/session"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

type Config struct {
	LogLevel string
	Port     string

	Store    string
	DBPath   string
	StoreDir string

	WordsFile string
	WordsURL  string
	BoardURL  string

	WordLength     int
	MaxAttempts    int
	RevealFirst    bool
	KeyDelay       time.Duration
	PollInterval   time.Duration
	VerdictTimeout time.Duration

	JWTSecret    string
	JWTExpires   time.Duration
	DailySalt    string
	ClientOrigin string
}

// Load reads the environment.
func Load() Config {
	return Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "5175"),
		Store:          strings.ToLower(getEnv("STORE", "sqlite")),
		DBPath:         getEnv("DB_PATH", "data/motus.db"),
		StoreDir:       getEnv("STORE_DIR", "data"),
		WordsFile:      getEnv("WORDS_FILE", ""),
		WordsURL:       getEnv("WORDS_URL", ""),
		BoardURL:       getEnv("BOARD_URL", "http://localhost:5175"),
		WordLength:     getInt("WORD_LENGTH", 5),
		MaxAttempts:    getInt("MAX_ATTEMPTS", 6),
		RevealFirst:    getBool("REVEAL_FIRST", true),
		KeyDelay:       getMillis("KEY_DELAY_MS", 50),
		PollInterval:   getMillis("POLL_INTERVAL_MS", 100),
		VerdictTimeout: getMillis("VERDICT_TIMEOUT_MS", 3000),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpires:     time.Duration(getInt("JWT_EXPIRES_HOURS", 24)) * time.Hour,
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// Source is the solver's word list: WORDS_URL, else WORDS_FILE, else embedded.
func (c Config) Source() words.Source { return words.SourceFor(c.WordsFile, c.WordsURL) }

// Board returns adapter timing. A zero KEY_DELAY_MS means no pause.
func (c Config) Board() board.Options {
	d := c.KeyDelay
	if d == 0 {
		d = -1
	}
	return board.Options{KeyDelay: d, PollInterval: c.PollInterval}
}

func (c Config) Session() session.Config {
	return session.Config{VerdictTimeout: c.VerdictTimeout}
}

func (c Config) Server() httpserver.Config {
	return httpserver.Config{
		JWTSecret:      c.JWTSecret,
		TokenTTL:       c.JWTExpires,
		ClientOrigin:   c.ClientOrigin,
		DailySalt:      c.DailySalt,
		DefaultLength:  c.WordLength,
		MaxAttempts:    c.MaxAttempts,
		RevealFirst:    c.RevealFirst,
		Source:         c.Source(),
		VerdictTimeout: c.VerdictTimeout,
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("bad integer in env")
		return def
	}
	return n
}

func getBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("bad boolean in env")
		return def
	}
	return b
}

func getMillis(k string, def int) time.Duration {
	return time.Duration(getInt(k, def)) * time.Millisecond
}
