package wordsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch"
)

func explore(e *wordsearch.Explorer, s string) []wordsearch.Outcome {
	out := make([]wordsearch.Outcome, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = e.ExploreChar(s[i])
	}
	return out
}

func TestExplorerNestedWords(t *testing.T) {
	trie := createTrie(t, []string{"ma", "mais", "maison", "son"})
	e := wordsearch.NewExplorer(trie)

	var found []string
	for i, c := range []byte("MAISONS") {
		switch e.ExploreChar(c) {
		case wordsearch.ValidWord:
			found = append(found, e.Word())
		case wordsearch.Reset:
			assert.Equal(t, 6, i, "only the trailing s should reset")
		}
	}
	assert.Equal(t, []string{"ma", "mais", "maison"}, found)
	assert.Empty(t, e.Word())
}

func TestExplorerOutcomes(t *testing.T) {
	trie := createTrie(t, []string{"xmas"})
	e := wordsearch.NewExplorer(trie)

	assert.Equal(t, []wordsearch.Outcome{
		wordsearch.PartialWord, wordsearch.PartialWord, wordsearch.PartialWord, wordsearch.ValidWord,
	}, explore(e, "XmAs"))
	assert.Equal(t, "xmas", e.Word())
	assert.Equal(t, []byte("xmas"), e.Bytes())
	assert.True(t, e.State().Word)

	// Past the end of the only word.
	assert.Equal(t, wordsearch.Reset, e.ExploreChar('x'))
	assert.Equal(t, wordsearch.State{}, e.State())
}

func TestExplorerResetBehavesLikeNew(t *testing.T) {
	trie := createTrie(t, []string{"ab", "b", "abc"})

	for _, breaker := range []byte{'z', '1', ' ', 0xff} {
		used := wordsearch.NewExplorer(trie)
		explore(used, "ab")
		require.Equal(t, wordsearch.Reset, used.ExploreChar(breaker))
		require.Empty(t, used.Bytes())

		fresh := wordsearch.NewExplorer(trie)
		for _, c := range []byte("abcb") {
			require.Equal(t, fresh.ExploreChar(c), used.ExploreChar(c), "after %q", breaker)
			require.Equal(t, fresh.Word(), used.Word())
		}
	}
}

func TestExplorerFlush(t *testing.T) {
	trie := createTrie(t, []string{"ab", "b"})
	e := wordsearch.NewExplorer(trie)

	explore(e, "a")
	e.Flush()
	assert.Empty(t, e.Word())
	assert.Equal(t, wordsearch.ValidWord, e.ExploreChar('b'))
	assert.Equal(t, "b", e.Word())
}

func TestExplorerWordIsACopy(t *testing.T) {
	trie := createTrie(t, []string{"ab", "cd"})
	e := wordsearch.NewExplorer(trie)

	explore(e, "ab")
	word := e.Word()
	e.Flush()
	explore(e, "cd")

	assert.Equal(t, "ab", word)
	assert.Equal(t, "cd", e.Word())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "reset", wordsearch.Reset.String())
	assert.Equal(t, "partial", wordsearch.PartialWord.String())
	assert.Equal(t, "valid", wordsearch.ValidWord.String())
	assert.Equal(t, "unknown", wordsearch.Outcome(9).String())
}
