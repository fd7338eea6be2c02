package wordsearch

// Direction is one of the eight straight lines a word can follow from its
// anchor cell.
type Direction uint8

const (
	Down Direction = iota
	Right
	Left
	Up
	DownRight
	UpLeft
	DownLeft
	UpRight

	numDirections = 8
)

// Directions lists every direction in scan order.
var Directions = [numDirections]Direction{Down, Right, Left, Up, DownRight, UpLeft, DownLeft, UpRight}

var directionNames = [numDirections]string{
	Down:      "down",
	Right:     "right",
	Left:      "left",
	Up:        "up",
	DownRight: "down-right",
	UpLeft:    "up-left",
	DownLeft:  "down-left",
	UpRight:   "up-right",
}

func (d Direction) String() string {
	if d < numDirections {
		return directionNames[d]
	}
	return "unknown"
}

// Delta returns the row and column change of one step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case DownRight:
		return 1, 1
	case UpLeft:
		return -1, -1
	case DownLeft:
		return 1, -1
	case UpRight:
		return -1, 1
	}
	return 0, 0
}

// span is a straight run of cells starting at the anchor: count cells,
// first at index start, each next one step further along the flat buffer.
type span struct {
	start int
	step  int
	count int
}

// span computes the run from (row, col) to the grid edge in direction d.
//
// In terms of a forward index range [lo, hi) walked with a positive stride:
//
//	down       lo=idx              hi=cols*rows       stride=cols
//	right      lo=idx              hi=(row+1)*cols    stride=1
//	left       lo=row*cols         hi=idx+1           stride=1       reversed
//	up         lo=col              hi=idx+1           stride=cols    reversed
//	down-right lo=idx              hi=idx+m*(cols+1)+1 stride=cols+1  m=min(cols-col-1, rows-row-1)
//	up-left    lo=idx-m*(cols+1)   hi=idx+1           stride=cols+1  m=min(col, row)        reversed
//	down-left  lo=idx              hi=idx+m*(cols-1)+1 stride=cols-1  m=min(rows-row-1, col)
//	up-right   lo=idx-m*(cols-1)   hi=idx+1           stride=cols-1  m=min(cols-col-1, row) reversed
//
// Reversed ranges are walked from the anchor end, so every span starts at idx.
// The diagonal m terms are the number of steps to the nearer edge, which keeps
// a diagonal from wrapping into a neighbouring row.
func (g *Grid) span(row, col int, d Direction) span {
	h, v := g.cols, g.rows
	idx := row*h + col

	switch d {
	case Down:
		return span{start: idx, step: h, count: v - row}
	case Right:
		return span{start: idx, step: 1, count: h - col}
	case Left:
		return span{start: idx, step: -1, count: col + 1}
	case Up:
		return span{start: idx, step: -h, count: row + 1}
	case DownRight:
		return span{start: idx, step: h + 1, count: min(h-col-1, v-row-1) + 1}
	case UpLeft:
		return span{start: idx, step: -(h + 1), count: min(col, row) + 1}
	case DownLeft:
		return span{start: idx, step: h - 1, count: min(v-row-1, col) + 1}
	case UpRight:
		return span{start: idx, step: -(h - 1), count: min(h-col-1, row) + 1}
	}
	return span{start: idx}
}

// Line returns the letters from (row, col) to the grid edge in direction d,
// anchor first.
func (g *Grid) Line(row, col int, d Direction) string {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic("wordsearch: cell out of range")
	}
	s := g.span(row, col, d)
	buf := make([]byte, s.count)
	for i, idx := 0, s.start; i < s.count; i, idx = i+1, idx+s.step {
		buf[i] = g.letters[idx]
	}
	return string(buf)
}
