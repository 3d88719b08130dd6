package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// settleCeiling caps the ticks spent settling a freshly filled glass. The
// settle loop has no inherent bound; hitting the ceiling leaves the glass
// slightly unsettled, which the animation then works out on screen.
const settleCeiling = 100000

// runCommand creates the run command animating the timer.
func (c *CLI) runCommand() *cobra.Command {
	cfg := c.loadConfigOrDefaults()

	var (
		glassOpts glassOptions
		timeOpts  timeOptions
		fps       float64
		steps     int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate an hourglass that drains in step with a time range",
		Long: `Animate an hourglass in the terminal, pacing its sand so the glass
empties exactly when the wall-clock time range elapses.

The range is defined by some combination of --begin, --end, and --length:

  sandglass run --length 25m
  sandglass run --end 17:30
  sandglass run --begin 09:00 --end 10:30

While the sand is ahead of the clock the neck is pinched shut; once the
clock catches up it opens again, so the drained fraction continuously
tracks elapsed time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTimer(cmd.Context(), glassOpts, timeOpts, fps, steps)
		},
	}

	addGlassFlags(cmd, &glassOpts, cfg)
	addTimeFlags(cmd, &timeOpts)
	cmd.Flags().Float64Var(&fps, "fps", cfg.FPS, "visual updates per second")
	cmd.Flags().IntVar(&steps, "steps-per-frame", cfg.StepsPerFrame, "simulation updates per visual update")

	return cmd
}

// runTimer prepares the glass and hands it to the TUI.
func (c *CLI) runTimer(ctx context.Context, glassOpts glassOptions, timeOpts timeOptions, fps float64, steps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %g", fps)
	}
	if steps < 1 {
		return fmt.Errorf("steps-per-frame must be at least 1, got %d", steps)
	}

	span, err := timeOpts.resolve(time.Now())
	if err != nil {
		return err
	}

	glass, rng, err := glassOpts.build()
	if err != nil {
		return err
	}

	// Settle the poured sand with the neck pinched so the timer starts from
	// a resting pile instead of a mid-air cascade.
	glass.Pinch()
	ticks, settled := glass.SettleBounded(rng, settleCeiling)
	if !settled {
		c.Logger.Warn("Glass did not settle before the tick ceiling", "ticks", ticks)
	}
	c.Logger.Debug("Prepared glass",
		"size", fmt.Sprintf("%dx%d", glass.Width(), glass.Height()),
		"grains", glass.CountTopSand(),
		"settleTicks", ticks)

	model := newTimerModel(glass, rng, span, fps, steps)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

// loadConfigOrDefaults loads the user config, falling back to the built-in
// defaults when the file is broken.
func (c *CLI) loadConfigOrDefaults() Config {
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("Ignoring config file", "err", err)
	}
	return cfg
}
