// Package persist implements write-back persistence for the clipboard board.
// The on-disk format is a UTF-8 JSON array of strings, most recent first,
// rewritten wholesale on every flush. Flushes are debounced: they happen when
// forced, after enough accumulated changes, or once the state has been dirty
// for longer than the auto-save delay. A failed write leaves the state dirty
// so a later flush retries it.
package persist

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// DefaultBatchSize is the number of changes that trigger a flush.
	DefaultBatchSize = 3

	// DefaultAutoSaveDelay is how long dirty state may sit in memory
	// before the next save or flusher tick pushes it to disk.
	DefaultAutoSaveDelay = 2 * time.Second
)

// Options tune the write-back policy. Zero values select the defaults.
type Options struct {
	BatchSize     int
	AutoSaveDelay time.Duration
}

// Manager owns the board file and decides when snapshots reach disk.
// It implements board.Saver.
type Manager struct {
	path          string
	batchSize     int
	autoSaveDelay time.Duration

	mu        sync.Mutex
	pending   []string // latest snapshot received via Save
	dirty     bool
	changes   int
	lastSaved time.Time
	loaded    bool
	cached    []string // last state read from or written to disk
}

// NewManager returns a Manager for the board file at path, creating the
// parent directory if needed.
func NewManager(path string, opts Options) (*Manager, error) {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.AutoSaveDelay <= 0 {
		opts.AutoSaveDelay = DefaultAutoSaveDelay
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Manager{
		path:          path,
		batchSize:     opts.BatchSize,
		autoSaveDelay: opts.AutoSaveDelay,
	}, nil
}

// DefaultDir returns the per-user copyboard configuration directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "copyboard"), nil
}

// DefaultPath returns the default board file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "board.json"), nil
}

// Load reads the board file. The result is cached; subsequent calls return
// the cache unless force is set. A missing file yields an empty board. A
// file that cannot be read or parsed is logged and yields an empty board,
// never an error.
func (m *Manager) Load(force bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded && !force {
		return append([]string(nil), m.cached...)
	}
	entries := readBoardFile(m.path)
	m.cached = entries
	m.loaded = true
	return append([]string(nil), entries...)
}

// Reload re-reads the board file, bypassing the cache.
func (m *Manager) Reload() []string {
	return m.Load(true)
}

// Save records a board snapshot and flushes it according to the write-back
// policy: immediately when forced, once enough changes have accumulated, or
// when the last write is older than the auto-save delay.
func (m *Manager) Save(entries []string, force bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append([]string(nil), entries...)
	m.dirty = true
	m.changes++
	if force || m.changes >= m.batchSize || time.Since(m.lastSaved) > m.autoSaveDelay {
		m.flushLocked()
	}
}

// ForceSave writes any pending snapshot to disk. It is a no-op when
// nothing has changed since the last write, so read-only command paths
// can defer it unconditionally.
func (m *Manager) ForceSave() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return
	}
	m.flushLocked()
}

// Flusher periodically writes dirty state that the batch threshold has not
// pushed out yet. It blocks until done is closed; daemons run it as a
// goroutine.
func (m *Manager) Flusher(done <-chan struct{}) {
	ticker := time.NewTicker(m.autoSaveDelay)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			m.mu.Lock()
			if m.dirty && time.Since(m.lastSaved) > m.autoSaveDelay {
				m.flushLocked()
			}
			m.mu.Unlock()
		}
	}
}

// Path returns the board file location.
func (m *Manager) Path() string {
	return m.path
}

// State reports the write-back bookkeeping, for status display.
func (m *Manager) State() (dirty bool, changes int, lastSaved time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty, m.changes, m.lastSaved
}

// flushLocked writes the pending snapshot to disk. On failure the state
// stays dirty and the change counter keeps its value, so the write is
// retried on a later save. Must be called with m.mu held.
func (m *Manager) flushLocked() {
	entries := m.pending
	if entries == nil {
		entries = []string{}
	}
	if err := writeBoardFile(m.path, entries); err != nil {
		slog.Warn("saving board failed", "path", m.path, "error", err)
		return
	}
	m.dirty = false
	m.changes = 0
	m.lastSaved = time.Now()
	m.cached = entries
}

// readBoardFile loads and parses the board file. Both a missing file and a
// corrupt one yield an empty board; only the corrupt case is logged.
func readBoardFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("reading board failed", "path", path, "error", err)
		}
		return []string{}
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("board file is not valid JSON, starting empty", "path", path, "error", err)
		return []string{}
	}
	if entries == nil {
		entries = []string{}
	}
	return entries
}

// writeBoardFile replaces the board file atomically: write to a temp file,
// sync, then rename over the target.
func writeBoardFile(path string, entries []string) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(entries); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
