package wordlist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch"
	"github.com/milden6/wordsearch/wordlist"
)

const dictText = "# christmas words\nxmas\n\n  Tree \nsanta's\nbell\n"

var dictWords = []string{"xmas", "Tree", "santa's", "bell"}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func TestReadWords(t *testing.T) {
	words, err := wordlist.ReadWords(strings.NewReader(dictText))
	require.NoError(t, err)
	assert.Equal(t, dictWords, words)

	words, err = wordlist.ReadWords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadWordsCompressed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want wordlist.Compression
	}{
		{"words.txt", []byte(dictText), wordlist.None},
		{"words.txt.gz", gzipped(t, dictText), wordlist.Gzip},
		{"words.txt.zst", zstded(t, dictText), wordlist.Zstd},
		// detection goes by content, not by name
		{"words.dat", gzipped(t, dictText), wordlist.Gzip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.data)

			f, err := wordlist.Open(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Compression())
			assert.Equal(t, len(tt.data), f.Len())
			assert.Equal(t, path, f.Path())
			require.NoError(t, f.Close())

			words, err := wordlist.LoadWords(path)
			require.NoError(t, err)
			assert.Equal(t, dictWords, words)
		})
	}
}

func TestLoadWordsErrors(t *testing.T) {
	_, err := wordlist.LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	corrupt := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	_, err = wordlist.LoadWords(writeFile(t, "corrupt.gz", corrupt))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	f, err := wordlist.Open(path)
	require.NoError(t, err)
	assert.Equal(t, wordlist.None, f.Compression())
	require.NoError(t, f.Close())

	words, err := wordlist.LoadWords(path)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestClean(t *testing.T) {
	kept, dropped := wordlist.Clean([]string{"xmas", "", "santa's", "Tree", "naïve", "ok"})
	assert.Equal(t, []string{"xmas", "Tree", "ok"}, kept)
	assert.Equal(t, 3, dropped)

	_, err := wordsearch.Build(kept)
	assert.NoError(t, err)
}

func TestReadGrid(t *testing.T) {
	g, err := wordlist.ReadGrid(strings.NewReader("XMAS\r\nooox\n\nSAMX\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, "SAMX", g.Row(2))

	_, err = wordlist.ReadGrid(strings.NewReader("abc\nde\n"))
	assert.ErrorIs(t, err, wordsearch.ErrInvalidSize)

	_, err = wordlist.ReadGrid(strings.NewReader("a b\n"))
	assert.ErrorIs(t, err, wordsearch.ErrInvalidCharacter)

	_, err = wordlist.ReadGrid(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, wordsearch.ErrInvalidSize)
}

func TestLoadGrid(t *testing.T) {
	rows := "MMMSXXMASM\nMSAMXMSMSA\nAMXSXMAAMM\nMSAMASMSMX\nXMASAMXAMM\nXXAMMXXAMA\nSMSMSASXSS\nSAXAMASAAA\nMAMMMXMMMM\nMXMXAXMASX\n"
	path := writeFile(t, "grid.txt.gz", gzipped(t, rows))

	g, err := wordlist.LoadGrid(path)
	require.NoError(t, err)

	n, err := wordsearch.Count(g, "xmas")
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}
