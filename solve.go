package wordsearch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Band is a contiguous range of grid columns [First, Last) searched by one
// worker.
type Band struct {
	First int
	Last  int
}

// Width returns the number of columns in the band.
func (b Band) Width() int {
	return b.Last - b.First
}

// Bands splits the columns [0, cols) into n contiguous bands. The first
// cols%n bands are one column wider than the rest. n is capped at cols, so no
// band is empty; cols == 0 yields no bands.
func Bands(cols, n int) []Band {
	n = min(n, cols)
	if n <= 0 {
		return nil
	}

	width, extra := cols/n, cols%n
	bands := make([]Band, n)
	first := 0
	for i := range bands {
		w := width
		if i < extra {
			w++
		}
		bands[i] = Band{First: first, Last: first + w}
		first += w
	}
	return bands
}

// scan feeds the letters of s to e and records every word it completes.
// The scan stops at the first Reset: any word starting further along the
// same line is found from its own anchor cell.
func (g *Grid) scan(e *Explorer, s span, row, col int, d Direction, res *Result) {
	e.Flush()
	for i, idx := 0, s.start; i < s.count; i, idx = i+1, idx+s.step {
		switch e.ExploreChar(g.letters[idx]) {
		case Reset:
			return
		case ValidWord:
			res.add(e.Bytes(), row, col, d)
		}
	}
}

func (g *Grid) solveCell(e *Explorer, row, col int, res *Result) {
	for _, d := range Directions {
		g.scan(e, g.span(row, col, d), row, col, d, res)
	}
}

func (g *Grid) solveBand(e *Explorer, b Band, res *Result) {
	for col := b.First; col < b.Last; col++ {
		for row := 0; row < g.rows; row++ {
			g.solveCell(e, row, col, res)
		}
	}
}

// SolveWith searches the whole grid on the calling goroutine using e. The
// explorer is flushed before every directional scan, so its state on entry
// does not matter.
func (g *Grid) SolveWith(e *Explorer) *Result {
	res := newResult()
	g.solveBand(e, Band{First: 0, Last: g.cols}, res)
	return res
}

// Solve finds every occurrence of every word of t in g.
//
// Columns are split into bands searched in parallel, each with its own
// Explorer over the shared trie. Neither g nor t may be modified while Solve
// runs. The result does not depend on the number of workers: matches are
// merged in band order, which is the order SolveWith produces.
func Solve(g *Grid, t *Trie, opts ...Option) *Result {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ctx := context.Background()
	start := time.Now()

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) * o.oversubscription
	}
	bands := Bands(g.cols, workers)
	log := o.logger.WithGrid(g)

	var eg errgroup.Group
	partial := make([]*Result, len(bands))
	for i, b := range bands {
		eg.Go(func() error {
			bandStart := time.Now()
			res := newResult()
			g.solveBand(NewExplorer(t), b, res)
			partial[i] = res

			elapsed := time.Since(bandStart)
			o.metricsCollector.RecordBand(b.Width()*g.rows, res.Count(), elapsed)
			log.LogBand(ctx, b, res.Count(), elapsed)
			return nil
		})
	}
	_ = eg.Wait() // bands never fail

	res := newResult()
	for _, p := range partial {
		res.Merge(p)
	}

	elapsed := time.Since(start)
	o.metricsCollector.RecordSearch(g.Len(), res.Count(), len(bands), elapsed)
	log.LogSearch(ctx, len(bands), res, elapsed)
	return res
}

// Count returns the number of straight-line occurrences of word in g,
// including overlapping ones and ones that read in opposite directions.
func Count(g *Grid, word string, opts ...Option) (int, error) {
	t, err := Build([]string{word})
	if err != nil {
		return 0, fmt.Errorf("counting %q: %w", word, err)
	}
	return Solve(g, t, opts...).Count(), nil
}
