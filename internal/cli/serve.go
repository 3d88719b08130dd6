package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sandglass/pkg/hourglass"
	"github.com/matzehuels/sandglass/pkg/timerange"
)

// serveCommand creates the serve command exposing the glass over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := c.loadConfigOrDefaults()

	var (
		glassOpts glassOptions
		timeOpts  timeOptions
		addr      string
		tps       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the running hourglass over HTTP",
		Long: `Run the hourglass timer headless and expose it over HTTP:

  GET /glass   the current glass as plain text
  GET /status  grain counts and progress as JSON

The simulation advances on a background ticker; the pinch policy paces the
sand against the time range exactly as the terminal timer does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, glassOpts, timeOpts, tps)
		},
	}

	addGlassFlags(cmd, &glassOpts, cfg)
	addTimeFlags(cmd, &timeOpts)
	cmd.Flags().StringVar(&addr, "addr", ":8372", "listen address")
	cmd.Flags().IntVar(&tps, "tps", 40, "simulation ticks per second")

	return cmd
}

// runServe prepares the glass and serves it until the context is canceled.
func (c *CLI) runServe(ctx context.Context, addr string, glassOpts glassOptions, timeOpts timeOptions, tps int) error {
	if tps < 1 {
		return fmt.Errorf("tps must be at least 1, got %d", tps)
	}

	span, err := timeOpts.resolve(time.Now())
	if err != nil {
		return err
	}

	glass, rng, err := glassOpts.build()
	if err != nil {
		return err
	}

	glass.Pinch()
	p := newProgress(c.Logger)
	if _, settled := glass.SettleBounded(rng, settleCeiling); !settled {
		c.Logger.Warn("Glass did not settle before the tick ceiling")
	}
	p.done("Settled glass")

	srv := newGlassServer(glass, rng, span, c.Logger)
	go srv.tickLoop(ctx, tps)

	httpSrv := &http.Server{Addr: addr, Handler: srv.routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("Serving hourglass", "addr", addr, "end", span.End().Format("15:04:05"))
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return ctx.Err()
}

// =============================================================================
// GlassServer - HTTP Handlers
// =============================================================================

// glassServer owns the simulated glass behind a mutex; the ticker goroutine
// and the HTTP handlers are the only writers and readers.
type glassServer struct {
	mu     sync.Mutex
	glass  *hourglass.Hourglass
	rng    hourglass.Rand
	span   timerange.Range
	logger *log.Logger
}

func newGlassServer(glass *hourglass.Hourglass, rng hourglass.Rand, span timerange.Range, logger *log.Logger) *glassServer {
	return &glassServer{glass: glass, rng: rng, span: span, logger: logger}
}

// routes builds the chi router for the server.
func (s *glassServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/glass", s.handleGlass)
	r.Get("/status", s.handleStatus)
	return r
}

// tickLoop advances the simulation at the configured rate until ctx ends.
func (s *glassServer) tickLoop(ctx context.Context, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.mu.Lock()
			applyPinchPolicy(s.glass, s.span, t)
			s.glass.Advance(s.rng)
			s.mu.Unlock()
		}
	}
}

func (s *glassServer) handleGlass(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	frame := s.glass.String()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, frame)
}

// statusResponse is the JSON shape of GET /status.
type statusResponse struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	TopSand      int     `json:"top_sand"`
	BottomSand   int     `json:"bottom_sand"`
	Pinched      bool    `json:"pinched"`
	SandProgress float64 `json:"sand_progress"`
	TimeProgress float64 `json:"time_progress"`
	End          string  `json:"end"`
}

func (s *glassServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	top, bottom := s.glass.CountTopSand(), s.glass.CountBottomSand()
	resp := statusResponse{
		Width:        s.glass.Width(),
		Height:       s.glass.Height(),
		TopSand:      top,
		BottomSand:   bottom,
		Pinched:      s.glass.Pinched(),
		TimeProgress: s.span.Progress(time.Now()),
		End:          s.span.End().Format(time.RFC3339),
	}
	s.mu.Unlock()
	if top+bottom != 0 {
		resp.SandProgress = float64(bottom) / float64(top+bottom)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Encode status", "err", err)
	}
}

// logRequests logs each request at debug level.
func (s *glassServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("Request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start).Round(time.Microsecond))
	})
}
