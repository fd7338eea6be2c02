package wordsearch_test

import (
	"fmt"

	"github.com/milden6/wordsearch"
)

func ExampleSolve() {
	trie, err := wordsearch.Build([]string{"go", "gopher", "hop", "pog"})
	if err != nil {
		panic(err)
	}

	grid, err := wordsearch.FromRows([]string{
		"GOPHER",
		"XOXXXX",
		"XXPXXX",
	})
	if err != nil {
		panic(err)
	}

	res := wordsearch.Solve(grid, trie)
	for _, m := range res.Matches {
		fmt.Println(m)
	}
	fmt.Println(res.Largest(1))

	// Output:
	// go@(0,0) right
	// gopher@(0,0) right
	// go@(0,0) down-right
	// pog@(0,2) left
	// pog@(2,2) up-left
	// [gopher]
}

func ExampleCount() {
	grid, _ := wordsearch.FromLinear(6, 5, "ooXooooSAMXooAooAoXMASoSoXoooo")

	n, _ := wordsearch.Count(grid, "xmas")
	fmt.Println(n)

	// Output:
	// 4
}
