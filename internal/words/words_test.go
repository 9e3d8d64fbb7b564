package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Éléphant", "elephant", true},
		{"  ÉCRAN ", "ecran", true},
		{"Œillet", "oeillet", true},
		{"ex æquo", "", false},
		{"garçon", "garcon", true},
		{"eleph-ant", "", false},
		{"aujourd'hui", "", false},
		{"", "", false},
		{"   ", "", false},
		{"naïve", "naive", true},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Normalize(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBuildCorpusRoundTrip(t *testing.T) {
	c := BuildCorpus([]string{"Éléphant", "eleph-ant", "ELEPHANT"}, 8, nil)
	if got := c.Words(); !reflect.DeepEqual(got, []string{"elephant"}) {
		t.Errorf("corpus = %v, want [elephant]", got)
	}
}

func TestBuildCorpusFilters(t *testing.T) {
	block := mapset.NewSet[string]("radis")
	raw := []string{"Lapin", "radis", "maison", "lapin", "avion", "sœurs", "x-y-z"}
	c := BuildCorpus(raw, 5, block)
	if got, want := c.Words(), []string{"lapin", "avion"}; !reflect.DeepEqual(got, want) {
		t.Errorf("corpus = %v, want %v", got, want)
	}
	if c.Length() != 5 {
		t.Errorf("Length = %d", c.Length())
	}
}

func TestBuildCorpusEmpty(t *testing.T) {
	if c := BuildCorpus(nil, 5, nil); c.Len() != 0 {
		t.Errorf("empty input should give empty corpus")
	}
	if c := BuildCorpus([]string{"lapin"}, 0, nil); c.Len() != 0 {
		t.Errorf("zero length should give empty corpus")
	}
}

func TestCorpusRemove(t *testing.T) {
	c := BuildCorpus([]string{"avion", "lapin", "radis", "canot"}, 5, nil)
	if !c.Remove("lapin") {
		t.Fatalf("Remove(lapin) = false")
	}
	if c.Remove("lapin") {
		t.Errorf("second Remove should report false")
	}
	if got, want := c.Words(), []string{"avion", "radis", "canot"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after remove = %v, want %v", got, want)
	}
	if !c.Contains("canot") || c.Contains("lapin") {
		t.Errorf("index out of sync after remove")
	}
	c.Remove("canot")
	if c.Len() != 2 || !c.Contains("radis") {
		t.Errorf("unexpected corpus %v", c.Words())
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines(strings.NewReader("# comment\nlapin\n\n  Radis  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"lapin", "Radis"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines = %v, want %v", got, want)
	}
}

func TestFileSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mots.txt")
	if err := os.WriteFile(p, []byte("Avion\nÉcran\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FileSource{Path: p}.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "Écran" {
		t.Errorf("Fetch = %v", got)
	}
	if _, err := (FileSource{Path: filepath.Join(t.TempDir(), "missing")}).Fetch(context.Background()); err == nil {
		t.Errorf("missing file should error")
	}
}

func TestHTTPSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("lapin\nradis\n"))
	}))
	defer ts.Close()

	got, err := HTTPSource{URL: ts.URL + "/mots.txt"}.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"lapin", "radis"}) {
		t.Errorf("Fetch = %v", got)
	}
	if _, err := (HTTPSource{URL: ts.URL + "/nope"}).Fetch(context.Background()); err == nil {
		t.Errorf("404 should error")
	}
}

func TestSourceFor(t *testing.T) {
	if _, ok := SourceFor("", "http://x").(HTTPSource); !ok {
		t.Errorf("url should select HTTPSource")
	}
	if _, ok := SourceFor("/tmp/a", "").(FileSource); !ok {
		t.Errorf("path should select FileSource")
	}
	if _, ok := SourceFor("", "").(EmbeddedSource); !ok {
		t.Errorf("default should be EmbeddedSource")
	}
}

func TestDefaultDictionary(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsAllowed("Éléphant") || !d.IsAllowed("lapin") {
		t.Errorf("embedded words should be allowed")
	}
	if d.IsAllowed("zzzzz") {
		t.Errorf("zzzzz should not be allowed")
	}
	w := d.RandomAnswer(5)
	if len(w) != 5 || !d.IsAllowed(w) {
		t.Errorf("RandomAnswer(5) = %q", w)
	}
	if d.RandomAnswer(42) != "" {
		t.Errorf("no 42-letter words expected")
	}
	per, total := d.Stats()
	if total == 0 || per[5] != len(d.Answers(5)) {
		t.Errorf("Stats inconsistent: %v %d", per, total)
	}
	lengths := d.Lengths()
	if len(lengths) != len(per) || !sort.IntsAreSorted(lengths) {
		t.Errorf("Lengths = %v, stats = %v", lengths, per)
	}
}

func TestEmbeddedSource(t *testing.T) {
	raw, err := EmbeddedSource{}.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) < 1000 {
		t.Errorf("embedded list has %d entries", len(raw))
	}
	for _, w := range raw {
		if w == "" || strings.HasPrefix(w, "#") {
			t.Fatalf("unparsed line %q", w)
		}
	}
}
