package wordsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milden6/wordsearch"
)

func TestResultLargest(t *testing.T) {
	trie := createTrie(t, []string{"cat", "act", "tac", "at", "a", "cta"})
	g := mustGrid(t, 3, 1, "cat")

	res := wordsearch.Solve(g, trie)
	// "act" would need a bend; "cta" reads c-t-a nowhere.
	assert.Equal(t, []string{"a", "at", "cat", "tac"}, res.Words())
	assert.Equal(t, []string{"cat", "tac", "at", "a"}, res.Largest(0))
	assert.Equal(t, res.Largest(0), res.Largest(-1))
	assert.Equal(t, []string{"cat", "tac"}, res.Largest(2))
	assert.Equal(t, res.Largest(0), res.Largest(99))

	assert.True(t, res.Contains("tac"))
	assert.False(t, res.Contains("act"))
	assert.Equal(t, 8, res.Occurrences("a"))
	assert.Equal(t, 0, res.Occurrences("cta"))
}

func TestResultMerge(t *testing.T) {
	trie := createTrie(t, []string{"ab"})
	left := wordsearch.Solve(mustGrid(t, 2, 1, "ab"), trie)
	right := wordsearch.Solve(mustGrid(t, 1, 2, "ab"), trie)

	var merged wordsearch.Result
	merged.Merge(left)
	merged.Merge(right)

	assert.Equal(t, 2, merged.Count())
	assert.Equal(t, 1, merged.Len())
	assert.Equal(t, 2, merged.Occurrences("ab"))
	assert.Equal(t, wordsearch.Right, merged.Matches[0].Direction)
	assert.Equal(t, wordsearch.Down, merged.Matches[1].Direction)
	assert.Equal(t, "ab@(0,0) down", merged.Matches[1].String())
}
