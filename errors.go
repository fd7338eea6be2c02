package wordsearch

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidCharacter is returned when a word or a grid contains something
	// other than an ASCII letter.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidSize is returned when grid dimensions do not match the letters
	// supplied, or when grid rows have different lengths.
	ErrInvalidSize = errors.New("invalid size")

	// ErrCapacityExceeded is returned when the trie would need more nodes than
	// a NodeRef can address.
	ErrCapacityExceeded = errors.New("trie capacity exceeded")

	// ErrTrieFrozen is returned when adding to a Builder after Finish.
	ErrTrieFrozen = errors.New("trie already finished")
)

// InvalidCharacterError reports the offending input and character.
//
// errors.Is(err, ErrInvalidCharacter) holds for every InvalidCharacterError.
type InvalidCharacterError struct {
	Input string // word or grid row being processed
	Char  rune
	Pos   int // byte offset of Char inside Input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at position %d of %q", ErrInvalidCharacter, e.Char, e.Pos, e.Input)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// InvalidSizeError reports an expected and actual letter count.
//
// Row is the zero based row that had the wrong length, or -1 when the whole
// buffer was checked at once.
type InvalidSizeError struct {
	Expected int
	Actual   int
	Row      int
}

func (e *InvalidSizeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has %d letters, expected %d", ErrInvalidSize, e.Row, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%v: expected %d letters, got %d", ErrInvalidSize, e.Expected, e.Actual)
}

func (e *InvalidSizeError) Unwrap() error { return ErrInvalidSize }

func checkLetters(s string) error {
	for i := 0; i < len(s); i++ {
		if _, ok := NewCharIndex(s[i]); !ok {
			return invalidCharAt(s, i)
		}
	}
	return nil
}

func invalidCharAt(s string, i int) error {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return &InvalidCharacterError{Input: s, Char: r, Pos: i}
}
