package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/hueblocks/internal/clipboard"
	"github.com/alexisbeaulieu97/hueblocks/internal/session"
	"github.com/alexisbeaulieu97/hueblocks/internal/tui"
)

var errNoTerminal = errors.New("hueblocks needs an interactive terminal; use 'hueblocks generate' for scripted output")

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "hueblocks",
		Short:         "Build color palettes from harmony rules in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runPalette(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	pf.IntVarP(&flags.blocks, "blocks", "n", 0, "Number of color blocks (3-9)")
	pf.StringVarP(&flags.theory, "theory", "t", "", "Color theory: analogous, complementary or random")
	pf.Int64Var(&flags.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	pf.BoolVar(&flags.circularMean, "circular-mean", false, "Average locked hues on the color wheel")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runPalette(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminalFile(os.Stdin) || !isTerminalFile(os.Stdout) {
		return errNoTerminal
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	// The alternate screen owns stderr, so logs only go to a file.
	log, closeLog, err := newLogger(cfg.Log, io.Discard, "tui")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closeLog() }()

	engine, seed := newEngine(cfg)
	log.WithFields(map[string]any{"seed": seed}).Debug("engine ready")

	s := session.New(session.Options{
		Blocks:    cfg.Blocks,
		Theory:    cfg.ParsedTheory(),
		Engine:    engine,
		Clipboard: clipboard.NewSystem(),
		Logger:    log,
	})

	m := tui.NewModel(s, cfg.Title, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "tui exited with error")
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info("session ended")
	return nil
}
