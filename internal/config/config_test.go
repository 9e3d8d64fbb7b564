package config

import (
	"testing"
	"time"

	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE", "WORD_LENGTH", "KEY_DELAY_MS", "VERDICT_TIMEOUT_MS", "WORDS_FILE", "WORDS_URL", "REVEAL_FIRST"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "5175" || c.Store != "sqlite" || c.WordLength != 5 || c.MaxAttempts != 6 {
		t.Errorf("defaults = %+v", c)
	}
	if c.VerdictTimeout != 3*time.Second || c.KeyDelay != 50*time.Millisecond || !c.RevealFirst {
		t.Errorf("timing defaults = %+v", c)
	}
	if _, ok := c.Source().(words.EmbeddedSource); !ok {
		t.Errorf("Source = %T, want embedded", c.Source())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE", "FILE")
	t.Setenv("WORD_LENGTH", "7")
	t.Setenv("KEY_DELAY_MS", "0")
	t.Setenv("VERDICT_TIMEOUT_MS", "250")
	t.Setenv("JWT_EXPIRES_HOURS", "2")
	t.Setenv("WORDS_FILE", "/tmp/mots.txt")
	t.Setenv("WORDS_URL", "")
	t.Setenv("REVEAL_FIRST", "false")

	c := Load()
	if c.Store != "file" || c.WordLength != 7 || c.RevealFirst {
		t.Errorf("overrides = %+v", c)
	}
	if c.Board().KeyDelay >= 0 {
		t.Errorf("zero delay should disable pauses, got %v", c.Board().KeyDelay)
	}
	if c.Session().VerdictTimeout != 250*time.Millisecond {
		t.Errorf("verdict timeout = %v", c.Session().VerdictTimeout)
	}
	srv := c.Server()
	if srv.TokenTTL != 2*time.Hour || srv.DefaultLength != 7 {
		t.Errorf("server config = %+v", srv)
	}
	if fs, ok := c.Source().(words.FileSource); !ok || fs.Path != "/tmp/mots.txt" {
		t.Errorf("Source = %#v", c.Source())
	}
}

func TestBadNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "six")
	t.Setenv("POLL_INTERVAL_MS", "-5")
	c := Load()
	if c.MaxAttempts != 6 || c.PollInterval != 100*time.Millisecond {
		t.Errorf("fallbacks = %d %v", c.MaxAttempts, c.PollInterval)
	}
}
