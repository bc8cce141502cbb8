// Package watch drives the refresh cadence for the live display. It
// combines filesystem change notifications, a 1 Hz ticker for the
// countdown and the periodic forced refresh, and a polling fallback for
// hosts where native notifications are unavailable.
//
// The watcher only produces events; a single consumer drains the channel
// and performs redraws serially, so no timing state is ever shared
// between goroutines.
package watch

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// EventKind discriminates watcher events.
type EventKind int

const (
	// EventRefresh requests a full redraw from a fresh aggregation pass.
	EventRefresh EventKind = iota
	// EventTick requests a countdown-only update of the status line.
	EventTick
)

// Event is one entry in the single-consumer refresh queue.
type Event struct {
	Kind EventKind
	// Forced marks a refresh that must bypass the renderer's debounce
	// window (the periodic forced refresh).
	Forced bool
	// Remaining is the time left until the next forced refresh. Set on
	// tick events.
	Remaining time.Duration
}

const (
	tickInterval = time.Second

	// DefaultForceInterval is how long the watcher waits without a change
	// notification before forcing a full refresh anyway. Guards against
	// missed or coalesced notifications.
	DefaultForceInterval = 30 * time.Second

	// coalesceInterval caps how often change notifications turn into
	// refresh events. Hook writers rewrite snapshot files in quick bursts.
	coalesceInterval = 100 * time.Millisecond
)

// Watcher observes the todos directory and emits refresh and tick events.
type Watcher struct {
	fsw           *fsnotify.Watcher // nil when in polling mode
	events        chan Event
	limiter       *rate.Limiter
	todosDir      string
	currentPath   string
	forceInterval time.Duration

	// polling fallback state
	lastSeen time.Time
}

// New creates a watcher over the todos directory and the live snapshot
// file. When native change notification cannot be set up the watcher
// degrades to modification-time polling; that is never an error.
func New(todosDir, currentPath string, forceInterval time.Duration) *Watcher {
	if forceInterval <= 0 {
		forceInterval = DefaultForceInterval
	}
	w := &Watcher{
		events:        make(chan Event, 16),
		limiter:       rate.NewLimiter(rate.Every(coalesceInterval), 1),
		todosDir:      todosDir,
		currentPath:   currentPath,
		forceInterval: forceInterval,
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("[WATCH] fsnotify unavailable, falling back to polling: %v", err)
		return w
	}
	if err := fsw.Add(todosDir); err != nil {
		log.Printf("[WATCH] cannot watch %s, falling back to polling: %v", todosDir, err)
		fsw.Close()
		return w
	}
	// The live snapshot may live outside the todos directory.
	if dir := filepath.Dir(currentPath); dir != todosDir {
		if err := fsw.Add(dir); err != nil {
			log.Printf("[WATCH] cannot watch %s: %v", dir, err)
		}
	}
	w.fsw = fsw
	return w
}

// Events returns the event queue. Exactly one consumer should drain it.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Polling reports whether the watcher is running without native change
// notification.
func (w *Watcher) Polling() bool {
	return w.fsw == nil
}

// Close releases the change-notification subscription.
func (w *Watcher) Close() error {
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

// Run produces events until ctx is cancelled. An immediate refresh is
// emitted first so the display has content before any file changes.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	w.lastSeen = w.latestModTime()
	lastRefresh := time.Now()
	w.emit(Event{Kind: EventRefresh, Forced: true})

	var fsEvents chan fsnotify.Event
	var fsErrors chan error
	if w.fsw != nil {
		fsEvents = w.fsw.Events
		fsErrors = w.fsw.Errors
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if !relevant(ev) || !w.limiter.Allow() {
				continue
			}
			lastRefresh = time.Now()
			w.emit(Event{Kind: EventRefresh})

		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			log.Printf("[WATCH] notification error: %v", err)

		case <-ticker.C:
			if w.fsw == nil {
				if latest := w.latestModTime(); latest.After(w.lastSeen) {
					w.lastSeen = latest
					lastRefresh = time.Now()
					w.emit(Event{Kind: EventRefresh})
					continue
				}
			}
			elapsed := time.Since(lastRefresh)
			if elapsed >= w.forceInterval {
				lastRefresh = time.Now()
				w.emit(Event{Kind: EventRefresh, Forced: true})
				continue
			}
			w.emit(Event{Kind: EventTick, Remaining: w.forceInterval - elapsed})
		}
	}
}

// emit enqueues an event, dropping it when the consumer is behind. A
// dropped refresh is recovered by the next forced interval; a dropped
// tick only delays the countdown display by a second.
func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

// relevant reports whether a notification concerns a snapshot file.
func relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
		return false
	}
	return strings.HasSuffix(ev.Name, ".json")
}

// latestModTime returns the newest modification time across the todos
// directory and the live snapshot file. Used by the polling fallback.
func (w *Watcher) latestModTime() time.Time {
	var latest time.Time
	if entries, err := os.ReadDir(w.todosDir); err == nil {
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latest) {
				latest = info.ModTime()
			}
		}
	}
	if info, err := os.Stat(w.currentPath); err == nil && info.ModTime().After(latest) {
		latest = info.ModTime()
	}
	return latest
}
