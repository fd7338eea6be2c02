package wordsearch

import (
	"cmp"
	"fmt"
	"slices"
)

// Match is one occurrence of a word: the anchor cell it starts from and the
// direction it reads in.
type Match struct {
	Word      string
	Row       int
	Col       int
	Direction Direction
}

func (m Match) String() string {
	return fmt.Sprintf("%s@(%d,%d) %v", m.Word, m.Row, m.Col, m.Direction)
}

// Result holds every occurrence found by a search together with the set of
// distinct words.
type Result struct {
	// Matches lists occurrences in scan order: by anchor column, then anchor
	// row, then direction in the order of Directions.
	Matches []Match

	words map[string]int
}

func newResult() *Result {
	return &Result{words: make(map[string]int)}
}

func (r *Result) add(word []byte, row, col int, d Direction) {
	w := string(word)
	r.Matches = append(r.Matches, Match{Word: w, Row: row, Col: col, Direction: d})
	r.words[w]++
}

// Merge appends other's occurrences to r.
func (r *Result) Merge(other *Result) {
	if r.words == nil {
		r.words = make(map[string]int, len(other.words))
	}
	r.Matches = append(r.Matches, other.Matches...)
	for w, n := range other.words {
		r.words[w] += n
	}
}

// Count returns the number of occurrences, counting overlapping and repeated
// words separately.
func (r *Result) Count() int {
	return len(r.Matches)
}

// Len returns the number of distinct words found.
func (r *Result) Len() int {
	return len(r.words)
}

// Contains reports whether word was found at least once. word must be
// lowercase.
func (r *Result) Contains(word string) bool {
	_, ok := r.words[word]
	return ok
}

// Occurrences returns how many times word was found.
func (r *Result) Occurrences(word string) int {
	return r.words[word]
}

// Words returns the distinct words found, sorted.
func (r *Result) Words() []string {
	words := make([]string, 0, len(r.words))
	for w := range r.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Largest returns up to n distinct words, longest first and alphabetical
// among words of equal length. n <= 0 returns all of them.
func (r *Result) Largest(n int) []string {
	words := r.Words()
	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	if n > 0 && n < len(words) {
		words = words[:n]
	}
	return words
}
