package main

import (
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/hueblocks/internal/config"
	"github.com/alexisbeaulieu97/hueblocks/internal/logger"
	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
)

type rootFlags struct {
	configPath   string
	blocks       int
	theory       string
	seed         int64
	circularMean bool
	logLevel     string
	logFile      string
}

// isTerminal is swapped out by tests.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func isTerminalFile(f *os.File) bool {
	return f != nil && isTerminal(int(f.Fd()))
}

// outputIsTerminal reports whether w is a file attached to a terminal.
func outputIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFile(f)
}

// loadConfig reads the config file, applies any flags the user set and
// validates the merged result. Without --config a missing default file is
// not an error.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if flags.configPath != "" {
		cfg, err = config.Decode(flags.configPath)
	} else {
		path, pathErr := config.DefaultPath()
		if pathErr != nil {
			cfg = config.Default()
		} else {
			cfg, err = config.LoadOptional(path)
		}
	}
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("blocks") {
		cfg.Blocks = flags.blocks
	}
	if fs.Changed("theory") {
		cfg.Theory = flags.theory
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if fs.Changed("circular-mean") {
		cfg.CircularMean = flags.circularMean
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger writes to the configured log file, or to fallback when none is
// set. The returned close func is always safe to call.
func newLogger(cfg config.LogConfig, fallback io.Writer, component string) (*logger.Logger, func() error, error) {
	writer := fallback
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		writer = f
		closeFn = f.Close
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Level,
		HumanReadable: cfg.HumanReadable,
		Writer:        writer,
		Component:     component,
	})
	if err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, err
	}

	return log, closeFn, nil
}

// newEngine builds a generator. A zero seed means seed from the clock.
func newEngine(cfg *config.Config) (*palette.Engine, int64) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))
	return palette.NewEngine(rng, cfg.SeedMode()), seed
}
