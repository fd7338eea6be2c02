package wordsearch

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a rectangular block of ASCII letters stored row by row. Cell
// (row, col) lives at index row*Cols()+col.
//
// A Grid must not be modified with Set while a search is running on it.
type Grid struct {
	letters []byte
	cols    int
	rows    int
}

// FromLinear builds a cols x rows grid from letters given in row-major order.
func FromLinear(cols, rows int, letters string) (*Grid, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidSize, cols, rows)
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrInvalidSize, cols, rows)
	}
	if len(letters) != cols*rows {
		return nil, &InvalidSizeError{Expected: cols * rows, Actual: len(letters), Row: -1}
	}
	if err := checkLetters(letters); err != nil {
		return nil, err
	}

	return &Grid{
		letters: []byte(letters),
		cols:    cols,
		rows:    rows,
	}, nil
}

// FromRows builds a grid from equally long rows.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &InvalidSizeError{Expected: 1, Actual: 0, Row: -1}
	}

	cols := len(rows[0])
	letters := make([]byte, 0, cols*len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, &InvalidSizeError{Expected: cols, Actual: len(row), Row: r}
		}
		if err := checkLetters(row); err != nil {
			return nil, err
		}
		letters = append(letters, row...)
	}

	return &Grid{
		letters: letters,
		cols:    cols,
		rows:    len(rows),
	}, nil
}

// Cols returns the number of columns (the horizontal length).
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows (the vertical length).
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.letters) }

// At returns the letter at a linear index. It panics if idx is out of range.
func (g *Grid) At(idx int) byte {
	return g.letters[idx]
}

// Cell returns the letter at (row, col). It panics if either is out of range.
func (g *Grid) Cell(row, col int) byte {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic("wordsearch: cell out of range")
	}
	return g.letters[row*g.cols+col]
}

// Set replaces the letter at a linear index. It panics if idx is out of range.
func (g *Grid) Set(idx int, c byte) error {
	if _, ok := NewCharIndex(c); !ok {
		return &InvalidCharacterError{Input: string(rune(c)), Char: rune(c), Pos: 0}
	}
	g.letters[idx] = c
	return nil
}

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		panic("wordsearch: row out of range")
	}
	return string(g.letters[r*g.cols : (r+1)*g.cols])
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.letters) + g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.letters[r*g.cols : (r+1)*g.cols])
	}
	return sb.String()
}
