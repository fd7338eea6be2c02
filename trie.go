package wordsearch

import (
	"fmt"
	"math"
)

// NodeRef addresses a node in the trie arena.
type NodeRef uint32

const (
	rootNode NodeRef = 0

	alphabetSize = 26

	// maxNodes is the number of nodes a NodeRef can address.
	maxNodes = int64(math.MaxUint32) + 1
)

// CharIndex is the position of an ASCII letter in the alphabet, 0 for 'a'
// through 25 for 'z'. The only way to get one is NewCharIndex, so indexing a
// node's children with it never goes out of range.
type CharIndex uint8

// NewCharIndex converts an ASCII letter of either case. ok is false for
// anything else.
func NewCharIndex(c byte) (ci CharIndex, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return CharIndex(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return CharIndex(c - 'A'), true
	}
	return 0, false
}

// Byte returns the lowercase letter.
func (c CharIndex) Byte() byte {
	return 'a' + byte(c)
}

// State is a position in the trie. The zero value is the root, which is not a
// word unless the empty string was added.
type State struct {
	Node NodeRef
	Word bool
}

// A child ref of zero means "no child": the root is never anybody's child.
type node struct {
	word     bool
	children [alphabetSize]NodeRef
}

// EnumFn is called by Enumerate for every prefix stored in the trie. The
// prefix slice is only valid during the call.
type EnumFn = func(prefix []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Builder accumulates words into a trie. It is not safe for concurrent use.
type Builder struct {
	nodes    []node
	numAdded int
	finished bool
	limit    int64
}

// NewBuilder creates an empty Builder holding just the root node.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make([]node, 1, 64),
		limit: maxNodes,
	}
}

// Add inserts a word. Letters are case-insensitive; anything that is not an
// ASCII letter fails with an *InvalidCharacterError. Adding a word twice is
// harmless. A failed Add leaves the builder unchanged.
func (b *Builder) Add(word string) error {
	if b.finished {
		return ErrTrieFrozen
	}
	if err := checkLetters(word); err != nil {
		return err
	}

	// Follow the existing path first so the capacity check covers every node
	// the word needs before any is created.
	current, depth := rootNode, 0
	for ; depth < len(word); depth++ {
		ci, _ := NewCharIndex(word[depth])
		next := b.nodes[current].children[ci]
		if next == rootNode {
			break
		}
		current = next
	}
	if need := int64(len(word) - depth); int64(len(b.nodes))+need > b.limit {
		return fmt.Errorf("adding %q: %w (%d nodes)", word, ErrCapacityExceeded, len(b.nodes))
	}

	for ; depth < len(word); depth++ {
		ci, _ := NewCharIndex(word[depth])
		next := NodeRef(len(b.nodes))
		b.nodes = append(b.nodes, node{})
		b.nodes[current].children[ci] = next
		current = next
	}

	if !b.nodes[current].word {
		b.nodes[current].word = true
		b.numAdded++
	}
	return nil
}

// Finish freezes the builder and returns the trie. Later calls to Add fail
// with ErrTrieFrozen; later calls to Finish return the same trie contents.
func (b *Builder) Finish() *Trie {
	b.finished = true
	return &Trie{
		nodes:    b.nodes,
		numAdded: b.numAdded,
	}
}

// Build creates a trie from a list of words.
func Build(words []string) (*Trie, error) {
	b := NewBuilder()
	for i, word := range words {
		if err := b.Add(word); err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
	}
	return b.Finish(), nil
}

// Trie is a frozen prefix tree over the 26 ASCII letters. All methods are
// safe for concurrent use.
type Trie struct {
	nodes    []node
	numAdded int
}

// Step follows the edge for c out of from. ok is false if no dictionary word
// continues that way.
//
// from must be a NodeRef produced by this trie (the root, or a previous Step).
func (t *Trie) Step(from NodeRef, c CharIndex) (s State, ok bool) {
	next := t.nodes[from].children[c]
	if next == rootNode {
		return State{}, false
	}
	return State{Node: next, Word: t.nodes[next].word}, true
}

func (t *Trie) walk(s string) (State, bool) {
	state := State{Node: rootNode, Word: t.nodes[rootNode].word}
	for i := 0; i < len(s); i++ {
		ci, ok := NewCharIndex(s[i])
		if !ok {
			return State{}, false
		}
		if state, ok = t.Step(state.Node, ci); !ok {
			return State{}, false
		}
	}
	return state, true
}

// Contains reports whether word was added to the trie.
func (t *Trie) Contains(word string) bool {
	state, ok := t.walk(word)
	return ok && state.Word
}

// HasPrefix reports whether at least one word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// FindAllPrefixesOf returns all words in the trie that are a prefix of the
// input string, shortest first, in lowercase.
func (t *Trie) FindAllPrefixesOf(input string) []string {
	var results []string
	if t.nodes[rootNode].word {
		results = append(results, "")
	}

	buf := make([]byte, 0, len(input))
	current := rootNode
	for i := 0; i < len(input); i++ {
		ci, ok := NewCharIndex(input[i])
		if !ok {
			return results
		}

		state, ok := t.Step(current, ci)
		if !ok {
			return results
		}

		buf = append(buf, ci.Byte())
		current = state.Node
		if state.Word {
			results = append(results, string(buf))
		}
	}

	return results
}

// Enumerate will call the given method, passing it every possible prefix of
// words in the trie in lexicographic order. Return Continue to continue
// enumeration, Skip to skip this branch, or Stop to stop enumeration.
func (t *Trie) Enumerate(fn EnumFn) {
	t.enumerate(rootNode, nil, fn)
}

func (t *Trie) enumerate(ref NodeRef, prefix []byte, fn EnumFn) EnumerationResult {
	n := &t.nodes[ref]

	// if the function didn't say to continue, then return.
	if result := fn(prefix, n.word); result != Continue {
		return result
	}

	l := len(prefix)
	prefix = append(prefix, 0)

	for c, child := range n.children {
		if child == rootNode {
			continue
		}
		prefix[l] = CharIndex(c).Byte()
		if t.enumerate(child, prefix, fn) == Stop {
			return Stop
		}
	}

	return Continue
}

// Words returns every word in the trie in lexicographic order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.numAdded)
	t.Enumerate(func(prefix []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(prefix))
		}
		return Continue
	})
	return words
}

// NumAdded returns the number of distinct words added.
func (t *Trie) NumAdded() int {
	return t.numAdded
}

// NumNodes returns the number of nodes in the arena, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}
