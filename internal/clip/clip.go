// Package clip provides a unified interface to the system clipboard across
// platforms. Build constraints select the implementation:
//
//	clip_poll.go:  Linux, macOS, Windows via golang.design/x/clipboard, polling
//	clip_other.go: headless stub for everything else
//
// The board only carries text, so the backends read and write plain strings.
package clip

import "time"

// DefaultPollInterval is the clipboard poll cadence used when nothing is
// configured.
const DefaultPollInterval = 250 * time.Millisecond

// Backend is the interface all platform clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current text clipboard contents, or "" when the
	// clipboard is empty or holds no text.
	Read() (string, error)

	// Write sets the text clipboard contents.
	Write(text string) error

	// Watch returns a channel that receives a signal whenever the clipboard
	// changes. The channel is never closed. The caller should Read() when it
	// receives from the channel.
	Watch() <-chan struct{}

	// Close releases any resources held by the backend.
	Close()
}
