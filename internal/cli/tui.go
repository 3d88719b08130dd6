package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/sandglass/pkg/hourglass"
	"github.com/matzehuels/sandglass/pkg/timerange"
)

// =============================================================================
// Pinch Policy
// =============================================================================

// applyPinchPolicy compares how much sand has drained against how much of
// the time range has elapsed and pinches or unpinches the neck so the sand
// tracks the clock.
func applyPinchPolicy(glass *hourglass.Hourglass, span timerange.Range, now time.Time) {
	top, bottom := glass.CountTopSand(), glass.CountBottomSand()

	sandProgress := 0.0
	if top+bottom != 0 {
		sandProgress = float64(bottom) / float64(top+bottom)
	}

	if sandProgress < span.Progress(now) {
		glass.Unpinch()
	} else {
		glass.Pinch()
	}
}

// =============================================================================
// TimerModel - Animated Hourglass
// =============================================================================

// frameMsg carries the wall-clock instant of one animation frame.
type frameMsg time.Time

// timerModel is the bubbletea model animating the hourglass against a
// wall-clock time range.
type timerModel struct {
	glass *hourglass.Hourglass
	rng   hourglass.Rand
	span  timerange.Range
	fps   float64
	steps int
	now   time.Time
	done  bool
}

// newTimerModel creates a timer model. The glass should already be filled,
// pinched, and settled.
func newTimerModel(glass *hourglass.Hourglass, rng hourglass.Rand, span timerange.Range, fps float64, steps int) timerModel {
	return timerModel{
		glass: glass,
		rng:   rng,
		span:  span,
		fps:   fps,
		steps: steps,
		now:   time.Now(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.frame()
}

// frame schedules the next animation frame at the configured rate.
func (m timerModel) frame() tea.Cmd {
	return tea.Tick(time.Duration(float64(time.Second)/m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case frameMsg:
		m.now = time.Time(msg)
		m = m.step()
		// Keep animating after the range elapses so trailing sand finishes
		// draining on screen.
		return m, m.frame()
	}
	return m, nil
}

// step runs one frame's worth of simulation.
func (m timerModel) step() timerModel {
	applyPinchPolicy(m.glass, m.span, m.now)
	for i := 0; i < m.steps; i++ {
		m.glass.Advance(m.rng)
	}
	if !m.done && m.span.Progress(m.now) >= 1 {
		m.done = true
	}
	return m
}

func (m timerModel) View() string {
	var b strings.Builder

	b.WriteString(styleGlassFrame(m.glass.String()))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(StyleDone.Render("Time's up!"))
	} else {
		remaining := m.span.End().Sub(m.now).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		pct := m.span.Progress(m.now) * 100
		if pct < 0 {
			pct = 0
		}
		b.WriteString(StyleValue.Render(fmt.Sprintf("%s remaining", remaining)))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" (%.0f%%)", pct)))
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}
