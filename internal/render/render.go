// Package render is the stateful terminal display engine. It draws a
// fixed header once, then rewrites the body region in place on every
// refresh: each line is cleared before it is written and surplus lines
// from the previous draw are blanked, so a shrinking body never leaves
// stale text behind. A separate countdown-only path rewrites just the
// status line so the 1 Hz tick never causes full-screen flicker.
package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/aggregate"
)

// DefaultDebounce is the minimum interval between two non-forced redraws.
const DefaultDebounce = time.Second

type phase int

const (
	phaseUninitialized phase = iota
	phaseHeaderDrawn
	phaseBodyDrawn
)

// RenderState is the mutable drawing state owned by one Renderer. It is
// threaded through redraws explicitly and never shared.
type RenderState struct {
	HeaderLines   int
	LastBodyLines int
	LastDraw      time.Time
	LastForced    time.Time
}

// Renderer writes incremental viewport updates for aggregation snapshots.
// Not safe for concurrent use; the event loop is its single caller.
type Renderer struct {
	out      *termenv.Output
	state    RenderState
	phase    phase
	debounce time.Duration

	// countdownRow is the 1-based header row the countdown line lives on.
	countdownRow int

	// size and now are injectable for tests.
	size func() (width, height int)
	now  func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize overrides terminal size detection.
func WithSize(fn func() (int, int)) Option {
	return func(r *Renderer) { r.size = fn }
}

// WithClock overrides the time source used for debounce decisions.
func WithClock(fn func() time.Time) Option {
	return func(r *Renderer) { r.now = fn }
}

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(r *Renderer) { r.debounce = d }
}

// New creates a renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:      termenv.NewOutput(w),
		debounce: DefaultDebounce,
		size:     terminalSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns a copy of the current render state.
func (r *Renderer) State() RenderState {
	return r.state
}

// Redraw performs a full redraw from the snapshot. Within the debounce
// window of the previous redraw the call is a no-op unless forced.
// Reports whether anything was drawn.
func (r *Renderer) Redraw(snap *aggregate.Snapshot, forced bool) bool {
	now := r.now()
	if r.phase == phaseBodyDrawn && !forced && now.Sub(r.state.LastDraw) < r.debounce {
		return false
	}

	if r.phase == phaseUninitialized {
		r.drawHeader()
	}

	width, height := r.size()
	lines := BuildBody(snap, width)

	// Body starts on the row right after the header. Every line is
	// cleared in place before the new content is written so a longer
	// previous line never bleeds through.
	r.out.MoveCursor(r.bodyRow(0), 1)
	drawn := 0
	for i, line := range lines {
		if r.bodyRow(i) > height {
			break // beyond the viewport, skip the write
		}
		r.out.ClearLine()
		fmt.Fprint(r.out, line, "\n")
		drawn++
	}
	// Blank out every surplus line from the previous, longer body.
	for i := drawn; i < r.state.LastBodyLines; i++ {
		if r.bodyRow(i) > height {
			break
		}
		r.out.ClearLine()
		fmt.Fprint(r.out, "\n")
	}

	// Park the cursor at the body offset so the next cycle starts from
	// the same place no matter what happened in between.
	r.out.MoveCursor(r.bodyRow(0), 1)

	r.state.LastBodyLines = drawn
	r.state.LastDraw = now
	if forced {
		r.state.LastForced = now
	}
	r.phase = phaseBodyDrawn
	return true
}

// Countdown rewrites only the status line with the time remaining until
// the next forced refresh. No other line is touched.
func (r *Renderer) Countdown(remaining time.Duration) {
	if r.phase != phaseBodyDrawn {
		return
	}
	width, _ := r.size()
	r.out.MoveCursor(r.countdownRow, 1)
	r.out.ClearLine()
	fmt.Fprint(r.out, countdownLine(remaining, width))
	r.out.MoveCursor(r.bodyRow(0), 1)
}

// Finish blanks the body region's parking row and prints a final status
// line below the last drawn body line. Called once on shutdown.
func (r *Renderer) Finish(msg string) {
	if r.phase == phaseUninitialized {
		fmt.Fprintln(r.out, msg)
		return
	}
	r.out.MoveCursor(r.bodyRow(r.state.LastBodyLines), 1)
	r.out.ClearLine()
	fmt.Fprintln(r.out, msg)
	r.out.ShowCursor()
}

// drawHeader clears the viewport and writes the fixed header block once.
// Its line count becomes the body's starting offset for every later draw.
func (r *Renderer) drawHeader() {
	r.out.ClearScreen()
	r.out.HideCursor()

	width, _ := r.size()
	lines := headerLines(width)
	for _, line := range lines {
		r.out.ClearLine()
		fmt.Fprint(r.out, line, "\n")
	}
	r.state.HeaderLines = len(lines)
	r.countdownRow = countdownHeaderRow
	r.phase = phaseHeaderDrawn
}

// bodyRow converts a zero-based body line index to a 1-based screen row.
func (r *Renderer) bodyRow(i int) int {
	return r.state.HeaderLines + 1 + i
}

// terminalSize reports the stdout viewport, defaulting to 80x24 when the
// output is not a terminal.
func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
