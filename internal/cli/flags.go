package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sandglass/pkg/hourglass"
	"github.com/matzehuels/sandglass/pkg/timerange"
)

// =============================================================================
// Glass Flags
// =============================================================================

// glassOptions holds the geometry and seeding flags shared by all commands
// that build an hourglass.
type glassOptions struct {
	width    int
	height   int
	fullness float64
	seed     uint64
}

// addGlassFlags registers the shared glass flags, defaulting from cfg.
func addGlassFlags(cmd *cobra.Command, o *glassOptions, cfg Config) {
	cmd.Flags().IntVar(&o.width, "width", cfg.Width, "total width of the hourglass (must be odd)")
	cmd.Flags().IntVar(&o.height, "height", cfg.Height, "total height of the hourglass (must exceed width)")
	cmd.Flags().Float64Var(&o.fullness, "fullness", cfg.Fullness, "how much of the hourglass to fill with sand, 0 to 1")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed for the sand flow (0 derives one from the clock)")
}

// validate checks the constraints the core enforces by panicking, so user
// input fails with an error instead.
func (o glassOptions) validate() error {
	if o.width < 3 || o.width%2 == 0 {
		return fmt.Errorf("width must be odd and at least 3, got %d", o.width)
	}
	if o.height <= o.width {
		return fmt.Errorf("height must exceed width, got %dx%d", o.width, o.height)
	}
	if o.fullness < 0 || o.fullness > 1 {
		return fmt.Errorf("fullness must be between 0 and 1, got %g", o.fullness)
	}
	return nil
}

// build constructs the glass with the upper bulb's share of sand poured in,
// along with the seeded random source that will drive its flow.
func (o glassOptions) build() (*hourglass.Hourglass, *rand.Rand, error) {
	if err := o.validate(); err != nil {
		return nil, nil, err
	}

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))

	glass := hourglass.New(o.width, o.height)
	glass.FillWithSandFromTop(o.fullness / 2)
	return glass, rng, nil
}

// =============================================================================
// Time Range Flags
// =============================================================================

// timeOptions holds the wall-clock range flags.
type timeOptions struct {
	begin  string
	end    string
	length string
}

// addTimeFlags registers the time range flags.
func addTimeFlags(cmd *cobra.Command, o *timeOptions) {
	cmd.Flags().StringVar(&o.begin, "begin", "", "start of time range as HH:MM[:SS] (today)")
	cmd.Flags().StringVar(&o.end, "end", "", "end of time range as HH:MM[:SS] (before begin means tomorrow)")
	cmd.Flags().StringVar(&o.length, "length", "", "length of time range (for example 90s, 1m30s, 1y2d3h4m5s)")
}

// resolve parses the given flags and resolves them into a Range at now.
func (o timeOptions) resolve(now time.Time) (timerange.Range, error) {
	var (
		begin, end *time.Time
		length     *time.Duration
	)

	if o.begin != "" {
		t, err := timerange.ParseClock(o.begin, now)
		if err != nil {
			return timerange.Range{}, fmt.Errorf("--begin: %w", err)
		}
		begin = &t
	}
	if o.end != "" {
		t, err := timerange.ParseClock(o.end, now)
		if err != nil {
			return timerange.Range{}, fmt.Errorf("--end: %w", err)
		}
		end = &t
	}
	if o.length != "" {
		d, err := timerange.ParseSpan(o.length)
		if err != nil {
			return timerange.Range{}, fmt.Errorf("--length: %w", err)
		}
		length = &d
	}

	return timerange.Resolve(begin, end, length, now)
}
