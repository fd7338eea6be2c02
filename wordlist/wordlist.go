package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/milden6/wordsearch"
)

// ReadWords reads one word per line. Surrounding whitespace is trimmed, and
// blank lines and lines starting with '#' are skipped. Words are returned as
// written; validation is left to the trie builder or Clean.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	err := eachLine(r, func(line string) {
		if strings.HasPrefix(line, "#") {
			return
		}
		words = append(words, line)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// ReadGrid reads one grid row per line, skipping blank lines.
func ReadGrid(r io.Reader) (*wordsearch.Grid, error) {
	var rows []string
	if err := eachLine(r, func(line string) {
		rows = append(rows, line)
	}); err != nil {
		return nil, err
	}
	return wordsearch.FromRows(rows)
}

func eachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := string(bytes.TrimSpace(scanner.Bytes()))
		if line == "" {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}

// LoadWords reads a word list from a file, which may be gzip or zstd
// compressed.
func LoadWords(path string) ([]string, error) {
	var words []string
	err := withReader(path, func(r io.Reader) (err error) {
		words, err = ReadWords(r)
		return err
	})
	return words, err
}

// LoadGrid reads a grid from a file, one row per line.
func LoadGrid(path string) (*wordsearch.Grid, error) {
	var g *wordsearch.Grid
	err := withReader(path, func(r io.Reader) (err error) {
		g, err = ReadGrid(r)
		return err
	})
	return g, err
}

func withReader(path string, fn func(io.Reader) error) (err error) {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	rc, err := f.Reader()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rc.Close())
	}()

	if err := fn(rc); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Clean returns the words made only of ASCII letters, in their original
// order, and the number of words it dropped.
func Clean(words []string) (kept []string, dropped int) {
	kept = make([]string, 0, len(words))
	for _, w := range words {
		if !isWord(w) {
			dropped++
			continue
		}
		kept = append(kept, w)
	}
	return kept, dropped
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if _, ok := wordsearch.NewCharIndex(w[i]); !ok {
			return false
		}
	}
	return true
}
