package wordsearch_test

import (
	"fmt"
	"testing"

	"github.com/milden6/wordsearch"
	"github.com/milden6/wordsearch/randgrid"
)

var benchWords = []string{
	"ma", "mai", "mais", "son", "ons", "maison", "maisons", "ai", "mal",
	"xmas", "tree", "star", "snow", "sled", "gift", "bell", "elf", "deer",
}

func BenchmarkSolve(b *testing.B) {
	trie, err := wordsearch.Build(benchWords)
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range []int{10, 100, 1000} {
		g := randgrid.New(1).Grid(size, size)

		b.Run(fmt.Sprintf("%dx%d/sequential", size, size), func(b *testing.B) {
			e := wordsearch.NewExplorer(trie)
			for i := 0; i < b.N; i++ {
				g.SolveWith(e)
			}
		})
		b.Run(fmt.Sprintf("%dx%d/parallel", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				wordsearch.Solve(g, trie)
			}
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := wordsearch.Build(benchWords); err != nil {
			b.Fatal(err)
		}
	}
}
