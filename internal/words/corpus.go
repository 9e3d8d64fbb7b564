// apps/go-solver/internal/words/corpus.go
//
// Word Corpus: the ordered, duplicate-free working set of same-length
// candidate words for one session.
//
// Invariants:
//   • every member has the board length
//   • no duplicates (first occurrence wins, order preserved)
//   • nothing from the invalid-word blocklist
//
// The only mutation after Build is Remove, used when the board rejects a
// word mid-session.

package words

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Corpus is an ordered set of normalized words of a single length.
type Corpus struct {
	length int
	words  []string
	index  map[string]int // word → position in words
}

// BuildCorpus normalizes raw, keeps words of exactly length letters that are
// not in blocklist, and removes duplicates. Malformed entries are dropped.
// A nil blocklist is treated as empty.
func BuildCorpus(raw []string, length int, blocklist mapset.Set[string]) *Corpus {
	c := &Corpus{length: length, index: make(map[string]int)}
	if length <= 0 {
		return c
	}
	for _, r := range raw {
		w, ok := Normalize(r)
		if !ok || len(w) != length {
			continue
		}
		if blocklist != nil && blocklist.Contains(w) {
			continue
		}
		if _, dup := c.index[w]; dup {
			continue
		}
		c.index[w] = len(c.words)
		c.words = append(c.words, w)
	}
	return c
}

// Words returns the corpus in source order. Callers must not modify it.
func (c *Corpus) Words() []string { return c.words }

// Len is the number of words left.
func (c *Corpus) Len() int { return len(c.words) }

// Length is the word length this corpus was built for.
func (c *Corpus) Length() int { return c.length }

// Contains reports whether w is in the corpus.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.index[w]
	return ok
}

// Remove drops w, keeping the order of the remaining words.
// Returns false if w was not present.
func (c *Corpus) Remove(w string) bool {
	i, ok := c.index[w]
	if !ok {
		return false
	}
	c.words = append(c.words[:i], c.words[i+1:]...)
	delete(c.index, w)
	for j := i; j < len(c.words); j++ {
		c.index[c.words[j]] = j
	}
	return true
}
