// apps/go-solver/internal/words/source.go
//
// Word Sources: bulk retrieval of a raw word list, one word per line.
// Casing and accents are left alone; BuildCorpus normalizes.
//
//   • FileSource     : a local text file (WORDS_FILE)
//   • HTTPSource     : a text file served over HTTP (WORDS_URL)
//   • EmbeddedSource : the list compiled into the binary (assets/mots.txt)

package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/robalobadob/motus/apps/go-solver/assets"
)

// Source fetches a raw word list.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// ParseLines reads one word per line, skipping blanks and '#' comments.
func ParseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// FileSource reads the list from a file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ParseLines(f)
}

// HTTPSource downloads the list. Client defaults to a 30s-timeout client.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch word list: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch word list: %s returned %d", s.URL, res.StatusCode)
	}
	return ParseLines(res.Body)
}

// EmbeddedSource serves the list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(ctx context.Context) ([]string, error) {
	return embeddedList()
}

// embeddedList parses assets/mots.txt.
func embeddedList() ([]string, error) {
	f, err := assets.FS.Open(assets.WordFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLines(f)
}

// StaticSource serves a fixed in-memory list.
type StaticSource []string

func (s StaticSource) Fetch(ctx context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// SourceFor picks the source from configuration: URL wins over file,
// and the embedded list is the fallback.
func SourceFor(path, url string) Source {
	switch {
	case url != "":
		return HTTPSource{URL: url}
	case path != "":
		return FileSource{Path: path}
	default:
		return EmbeddedSource{}
	}
}
