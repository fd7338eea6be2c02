package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the command can be told, from a TOML file and/or
// flags. Flags given on the command line win over the file.
type Config struct {
	Dict          string    `toml:"dict"`
	Word          string    `toml:"word"`
	Grid          string    `toml:"grid"`
	Random        string    `toml:"random"`
	Seed          uint64    `toml:"seed"`
	Workers       int       `toml:"workers"`
	Oversubscribe int       `toml:"oversubscribe"`
	Top           int       `toml:"top"`
	Count         bool      `toml:"count"`
	Strict        bool      `toml:"strict"`
	Log           LogConfig `toml:"log"`

	path string
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func parseConfig(args []string) (*Config, error) {
	cfg := &Config{
		Top:           20,
		Oversubscribe: 4,
		Log:           LogConfig{Level: "info", Format: "text"},
	}

	fs := flag.NewFlagSet("wordsearch", flag.ContinueOnError)
	fs.StringVar(&cfg.path, "config", "", "TOML configuration file")
	fs.StringVar(&cfg.Dict, "dict", cfg.Dict, "dictionary file, one word per line (gzip and zstd accepted)")
	fs.StringVar(&cfg.Word, "word", cfg.Word, "count occurrences of a single word instead of using a dictionary")
	fs.StringVar(&cfg.Grid, "grid", cfg.Grid, "grid file, one row per line (default: standard input)")
	fs.StringVar(&cfg.Random, "random", cfg.Random, "search a random COLSxROWS grid instead of reading one")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for -random")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of column bands (0: derive from GOMAXPROCS)")
	fs.IntVar(&cfg.Oversubscribe, "oversubscribe", cfg.Oversubscribe, "bands per CPU when -workers is 0")
	fs.IntVar(&cfg.Top, "top", cfg.Top, "print the N longest words found (0: all)")
	fs.BoolVar(&cfg.Count, "count", cfg.Count, "print only the number of occurrences")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on dictionary entries with non-letters instead of skipping them")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.path != "" {
		if err := loadTOML(cfg.path, cfg); err != nil {
			return nil, err
		}
		// Parse again so that explicit flags override the file.
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.validate()
}

func loadTOML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parsing config file %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	switch {
	case c.Dict == "" && c.Word == "":
		return errors.New("one of -dict or -word is required")
	case c.Dict != "" && c.Word != "":
		return errors.New("-dict and -word are mutually exclusive")
	case c.Grid != "" && c.Random != "":
		return errors.New("-grid and -random are mutually exclusive")
	}
	if c.Random != "" {
		if _, _, err := c.randomSize(); err != nil {
			return err
		}
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	return nil
}

// randomSize parses Random as COLSxROWS.
func (c *Config) randomSize() (cols, rows int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(c.Random), "x")
	if !ok {
		return 0, 0, fmt.Errorf("random grid size %q: want COLSxROWS", c.Random)
	}
	if cols, err = strconv.Atoi(w); err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("random grid size %q: bad column count", c.Random)
	}
	if rows, err = strconv.Atoi(h); err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("random grid size %q: bad row count", c.Random)
	}
	return cols, rows, nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}

func (l LogConfig) handler(w io.Writer) slog.Handler {
	level, _ := l.level()
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
