package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

var swatchStyle = lipgloss.NewStyle().Width(6)

type lockSpec struct {
	slot  int
	color color.HSV
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var locks []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one generated palette and exit",
		Long: `Generate a palette without the interactive UI and print one hex color per block.

Blocks can be pinned with --lock N=HEX (N counts from 1); the remaining blocks
are generated around them.`,
		Example: `  hueblocks generate --theory complementary --blocks 4
  hueblocks generate --seed 7 --lock 1=FF8800 --lock 3=003366`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, locks)
		},
	}

	cmd.Flags().StringArrayVarP(&locks, "lock", "l", nil, "Lock block N to HEX, as N=HEX (repeatable)")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, rawLocks []string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.Log, cmd.ErrOrStderr(), "generate")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closeLog() }()

	locks, err := parseLocks(rawLocks)
	if err != nil {
		return err
	}

	p := palette.New(cfg.Blocks)
	for _, l := range locks {
		if err := p.LockColor(l.slot, l.color); err != nil {
			return fmt.Errorf("lock block %d: %w", l.slot+1, err)
		}
	}

	engine, seed := newEngine(cfg)
	stats := engine.Regenerate(p, cfg.ParsedTheory())

	log.WithTheory(stats.Theory).WithFields(map[string]any{
		"seed":        seed,
		"locked":      stats.Locked,
		"regenerated": stats.Regenerated,
		"seed_hue":    stats.SeedHue,
	}).Debug("palette generated")

	out := cmd.OutOrStdout()
	return printPalette(out, p.Blocks(), outputIsTerminal(out))
}

// parseLocks reads N=HEX pairs. N is 1-based.
func parseLocks(raw []string) ([]lockSpec, error) {
	specs := make([]lockSpec, 0, len(raw))
	for _, r := range raw {
		idx, hex, ok := strings.Cut(r, "=")
		if !ok {
			return nil, apperrors.NewValidationError("lock", fmt.Sprintf("%q is not N=HEX", r), nil)
		}

		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || n < 1 || n > palette.Capacity {
			return nil, apperrors.NewValidationError("lock", fmt.Sprintf("block number %q must be between 1 and %d", idx, palette.Capacity), err)
		}

		hsv, err := color.HexToHSV(strings.TrimSpace(hex))
		if err != nil {
			return nil, apperrors.NewValidationError("lock", fmt.Sprintf("block %d", n), err)
		}

		specs = append(specs, lockSpec{slot: n - 1, color: hsv})
	}
	return specs, nil
}

func printPalette(w io.Writer, blocks []palette.Block, swatches bool) error {
	for _, b := range blocks {
		line := b.Hex()
		if swatches {
			line = swatchStyle.Background(lipgloss.Color(b.Hex())).Render("") + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
