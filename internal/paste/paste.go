// Package paste synthesises a paste keystroke (Ctrl+V, Cmd+V on macOS) in
// whatever application holds focus. Triggering is fire-and-forget: the
// keystroke runs on its own goroutine and failures are logged, never
// returned. Build constraints select the implementation:
//
//	paste_linux.go:   xdotool, falling back to wtype then xvkbd
//	paste_darwin.go:  osascript System Events keystroke
//	paste_windows.go: user32 keybd_event via golang.org/x/sys
//	paste_other.go:   unsupported
package paste

import (
	"log/slog"
	"time"
)

// DefaultDelay gives the focused application time to settle before the
// keystroke lands.
const DefaultDelay = 100 * time.Millisecond

// Dispatcher triggers paste keystrokes.
type Dispatcher interface {
	// Trigger fires a paste keystroke and returns immediately. There is
	// no completion signal.
	Trigger()

	// TriggerAfter fires a paste keystroke after the given delay, leaving
	// a window for focus to return to the target application.
	TriggerAfter(delay time.Duration)
}

type dispatcher struct{}

// New returns the paste dispatcher for this platform.
func New() Dispatcher { return dispatcher{} }

func (dispatcher) Trigger() {
	go fire()
}

func (dispatcher) TriggerAfter(delay time.Duration) {
	go func() {
		time.Sleep(delay)
		fire()
	}()
}

func fire() {
	if err := sendPasteKey(); err != nil {
		slog.Debug("paste keystroke failed", "err", err)
	}
}
