// Command wordsearch finds dictionary words in a letter grid.
//
// Search a puzzle read from standard input with a dictionary:
//
//	wordsearch -dict /usr/share/dict/words < puzzle.txt
//
// Count every occurrence of one word:
//
//	wordsearch -word xmas -grid input.txt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/milden6/wordsearch"
	"github.com/milden6/wordsearch/randgrid"
	"github.com/milden6/wordsearch/wordlist"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("wordsearch failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	logger := wordsearch.NewLogger(cfg.Log.handler(stderr))
	ctx := context.Background()

	grid, err := loadGrid(cfg, stdin)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "grid loaded", "cols", grid.Cols(), "rows", grid.Rows())

	metrics := &wordsearch.BasicMetricsCollector{}
	opts := []wordsearch.Option{
		wordsearch.WithWorkers(cfg.Workers),
		wordsearch.WithOversubscription(cfg.Oversubscribe),
		wordsearch.WithLogger(logger),
		wordsearch.WithMetricsCollector(metrics),
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if cfg.Word != "" {
		n, err := wordsearch.Count(grid, cfg.Word, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
		return nil
	}

	trie, err := loadTrie(ctx, cfg.Dict, cfg.Strict, logger)
	if err != nil {
		return err
	}

	res := wordsearch.Solve(grid, trie, opts...)
	stats := metrics.GetStats()
	logger.InfoContext(ctx, "search finished",
		"matches", res.Count(),
		"distinct", res.Len(),
		"bands", stats.BandCount,
		"band_avg_ns", stats.BandAvgNanos,
		"band_max_ns", stats.BandMaxNanos,
	)

	if cfg.Count {
		fmt.Fprintln(out, res.Count())
		return nil
	}
	for _, w := range res.Largest(cfg.Top) {
		fmt.Fprintf(out, "%s\t%d\n", w, res.Occurrences(w))
	}
	return nil
}

func loadGrid(cfg *Config, stdin io.Reader) (*wordsearch.Grid, error) {
	switch {
	case cfg.Random != "":
		cols, rows, _ := cfg.randomSize()
		return randgrid.New(cfg.Seed).Grid(cols, rows), nil
	case cfg.Grid != "":
		return wordlist.LoadGrid(cfg.Grid)
	}
	g, err := wordlist.ReadGrid(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading grid from standard input: %w", err)
	}
	return g, nil
}

func loadTrie(ctx context.Context, path string, strict bool, logger *wordsearch.Logger) (*wordsearch.Trie, error) {
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, err
	}

	if !strict {
		words = cleanWords(ctx, path, words, logger)
	}

	trie, err := wordsearch.Build(words)
	if err != nil {
		return nil, fmt.Errorf("building dictionary from %s: %w", path, err)
	}
	logger.DebugContext(ctx, "dictionary loaded",
		"path", path,
		"words", trie.NumAdded(),
		"nodes", trie.NumNodes(),
	)
	return trie, nil
}

func cleanWords(ctx context.Context, path string, words []string, logger *wordsearch.Logger) []string {
	words, dropped := wordlist.Clean(words)
	if dropped > 0 {
		logger.WarnContext(ctx, "skipped dictionary entries with non-letters",
			"path", path,
			"dropped", dropped,
		)
	}
	return words
}
