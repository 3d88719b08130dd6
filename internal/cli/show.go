package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// showCommand creates the show command printing a single render.
func (c *CLI) showCommand() *cobra.Command {
	cfg := c.loadConfigOrDefaults()

	var (
		glassOpts glassOptions
		plain     bool
		flipped   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a single settled render of the hourglass",
		Long: `Build an hourglass, pour in sand, let it settle with the neck pinched,
and print the result once. Useful for previewing glass dimensions or piping
a glass into other tools with --plain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.OutOrStdout(), glassOpts, plain, flipped)
		},
	}

	addGlassFlags(cmd, &glassOpts, cfg)
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors in the output")
	cmd.Flags().BoolVar(&flipped, "flipped", false, "turn the glass upside down before printing")

	return cmd
}

// runShow builds, settles, and prints the glass.
func (c *CLI) runShow(w io.Writer, glassOpts glassOptions, plain, flipped bool) error {
	glass, rng, err := glassOpts.build()
	if err != nil {
		return err
	}

	glass.Pinch()
	if _, settled := glass.SettleBounded(rng, settleCeiling); !settled {
		c.Logger.Warn("Glass did not settle before the tick ceiling")
	}
	if flipped {
		glass.Flip()
	}

	frame := glass.String()
	if !plain {
		frame = styleGlassFrame(frame)
	}
	fmt.Fprintln(w, frame)
	return nil
}
