package wordsearch

// Outcome is what an Explorer reports after consuming one character.
type Outcome uint8

const (
	// Reset means the character was not a letter or no word continues with
	// it. The explorer has discarded everything it had accumulated.
	Reset Outcome = iota

	// PartialWord means the letters so far are a proper prefix of some word.
	PartialWord

	// ValidWord means the letters so far form a complete word.
	ValidWord
)

func (o Outcome) String() string {
	switch o {
	case Reset:
		return "reset"
	case PartialWord:
		return "partial"
	case ValidWord:
		return "valid"
	}
	return "unknown"
}

// Explorer walks a Trie one character at a time and remembers the letters
// it accepted. An Explorer is owned by a single goroutine; the Trie it reads
// may be shared.
type Explorer struct {
	trie  *Trie
	word  []byte
	state State
}

// NewExplorer returns an Explorer positioned at the root of t.
func NewExplorer(t *Trie) *Explorer {
	return &Explorer{
		trie: t,
		word: make([]byte, 0, 32),
	}
}

// ExploreChar consumes c. On Reset the explorer is flushed, so the next call
// behaves as on a new Explorer.
func (e *Explorer) ExploreChar(c byte) Outcome {
	ci, ok := NewCharIndex(c)
	if !ok {
		e.Flush()
		return Reset
	}

	next, ok := e.trie.Step(e.state.Node, ci)
	if !ok {
		e.Flush()
		return Reset
	}

	e.state = next
	e.word = append(e.word, ci.Byte())

	if next.Word {
		return ValidWord
	}
	return PartialWord
}

// Bytes returns the lowercase letters accepted since the last flush. The
// slice is only valid until the next call to ExploreChar or Flush.
func (e *Explorer) Bytes() []byte {
	return e.word
}

// Word returns a copy of the letters accepted since the last flush.
func (e *Explorer) Word() string {
	return string(e.word)
}

// State returns the current trie position.
func (e *Explorer) State() State {
	return e.state
}

// Flush returns the explorer to the root, keeping its buffer capacity.
func (e *Explorer) Flush() {
	e.state = State{}
	e.word = e.word[:0]
}
