// Package randgrid generates random letter grids, mostly for benchmarks.
package randgrid

import (
	"math/rand/v2"
	"strings"

	"github.com/milden6/wordsearch"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Generator produces grids from a seeded source, so the same seed always
// gives the same grids. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Grid returns a cols x rows grid of uniformly random lowercase letters.
func (gen *Generator) Grid(cols, rows int) *wordsearch.Grid {
	buf := make([]byte, cols*rows)
	for i := range buf {
		buf[i] = letters[gen.rng.IntN(len(letters))]
	}
	g, err := wordsearch.FromLinear(cols, rows, string(buf))
	if err != nil {
		// buf only ever holds letters of the right count
		panic(err)
	}
	return g
}

// Plant writes word into g at a random anchor and direction where it fits
// and returns where it went. ok is false if the word is longer than every
// line of the grid or contains a non-letter.
func (gen *Generator) Plant(g *wordsearch.Grid, word string) (m wordsearch.Match, ok bool) {
	if word == "" || g.Len() == 0 {
		return wordsearch.Match{}, false
	}
	for i := 0; i < len(word); i++ {
		if _, ok := wordsearch.NewCharIndex(word[i]); !ok {
			return wordsearch.Match{}, false
		}
	}
	word = strings.ToLower(word)

	var fits []wordsearch.Match
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, d := range wordsearch.Directions {
				if len(g.Line(row, col, d)) >= len(word) {
					fits = append(fits, wordsearch.Match{Word: word, Row: row, Col: col, Direction: d})
				}
			}
		}
	}
	if len(fits) == 0 {
		return wordsearch.Match{}, false
	}

	m = fits[gen.rng.IntN(len(fits))]
	dRow, dCol := m.Direction.Delta()
	for i := 0; i < len(word); i++ {
		idx := (m.Row+i*dRow)*g.Cols() + m.Col + i*dCol
		_ = g.Set(idx, word[i]) // letters checked above
	}
	return m, true
}
