// Package poller feeds clipboard changes into the board. It is the capture
// half of the monitor daemon: whatever the user copies, anywhere on the
// system, becomes the newest board entry.
package poller

import (
	"context"
	"log/slog"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/board"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/clip"
)

// Poller copies clipboard changes onto the board.
type Poller struct {
	store   *board.Store
	backend clip.Backend
}

// New creates a Poller but does not start it.
func New(store *board.Store, backend clip.Backend) *Poller {
	return &Poller{store: store, backend: backend}
}

// Run consumes clipboard change signals until ctx is cancelled. Empty
// clipboard reads are skipped; an unchanged head is absorbed by the
// board's deduplication. Call in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	slog.Info("clipboard capture started", "backend", p.backend.Name())
	watch := p.backend.Watch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-watch:
			text, err := p.backend.Read()
			if err != nil {
				slog.Error("clipboard read failed", "err", err)
				continue
			}
			if text == "" {
				continue
			}
			p.store.Insert(text)
			slog.Debug("captured clipboard change", "chars", len(text))
		}
	}
}
