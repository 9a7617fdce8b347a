// Package board implements the bounded clipboard history store.
// The board is an ordered list of text entries with the most recent at
// index 0. It is persistence-agnostic: after each mutation the store hands
// a snapshot to an optional Saver, which decides when to touch disk. The
// Saver is always invoked outside the board lock.
package board

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultMaxSize is the board capacity used when nothing is configured.
	DefaultMaxSize = 10

	// DefaultPreviewChars is the truncation width for Preview.
	DefaultPreviewChars = 30
)

// Saver receives board snapshots after mutations. force requests an
// immediate write instead of a batched one.
type Saver interface {
	Save(entries []string, force bool)
}

// Store is a bounded, ordered, head-deduplicating list of text entries.
type Store struct {
	mu      sync.RWMutex
	entries []string // index 0 is the most recent
	maxSize int
	saver   Saver
}

// New returns a Store holding the given entries, trimmed to maxSize.
// maxSize is clamped to at least 1. saver may be nil for a purely
// in-memory store.
func New(maxSize int, entries []string, saver Saver) *Store {
	if maxSize < 1 {
		maxSize = 1
	}
	if len(entries) > maxSize {
		entries = entries[:maxSize]
	}
	s := &Store{
		entries: make([]string, len(entries)),
		maxSize: maxSize,
		saver:   saver,
	}
	copy(s.entries, entries)
	return s
}

// Insert places content at the head of the board. If content already sits
// at the head the call is a no-op and the board stays untouched, persistence
// included. The oldest entry is evicted once the board exceeds its capacity.
// Returns the content for convenience.
func (s *Store) Insert(content string) string {
	s.mu.Lock()
	if len(s.entries) > 0 && s.entries[0] == content {
		s.mu.Unlock()
		return content
	}
	s.entries = append(s.entries, "")
	copy(s.entries[1:], s.entries)
	s.entries[0] = content
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[:s.maxSize]
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.save(snap, false)
	return content
}

// RemoveAt deletes the entry at index, preserving the order of the rest.
// Returns false if index is out of range.
func (s *Store) RemoveAt(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.entries) {
		s.mu.Unlock()
		return false
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.save(snap, false)
	return true
}

// RemoveOldest deletes the entry at the tail of the board.
// Returns false if the board is empty.
func (s *Store) RemoveOldest() bool {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.save(snap, false)
	return true
}

// Clear empties the board unconditionally and forces the empty state to
// disk, even if the board was already empty.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	s.save([]string{}, true)
}

// Items returns a copy of the board, most recent first.
func (s *Store) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ItemAt returns the entry at index, or false if index is out of range.
func (s *Store) ItemAt(index int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.entries) {
		return "", false
	}
	return s.entries[index], true
}

// Size returns the number of entries on the board.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MaxSize returns the board capacity.
func (s *Store) MaxSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Preview returns a display string per index: the entry truncated to
// maxChars runes with a "..." marker, newlines rewritten to "↵ ", prefixed
// with the index. maxChars below 1 falls back to DefaultPreviewChars.
func (s *Store) Preview(maxChars int) map[int]string {
	if maxChars < 1 {
		maxChars = DefaultPreviewChars
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]string, len(s.entries))
	for i, item := range s.entries {
		display := item
		if runes := []rune(item); len(runes) > maxChars {
			display = string(runes[:maxChars]) + "..."
		}
		display = strings.ReplaceAll(display, "\n", "↵ ")
		out[i] = fmt.Sprintf("%d: %s", i, display)
	}
	return out
}

// SetMaxSize changes the board capacity, clamped to at least 1, evicting
// the oldest entries until the board fits. Evictions are forced to disk
// immediately; a pure capacity change is not persisted.
func (s *Store) SetMaxSize(size int) {
	if size < 1 {
		size = 1
	}
	s.mu.Lock()
	s.maxSize = size
	evicted := false
	if len(s.entries) > size {
		s.entries = s.entries[:size]
		evicted = true
	}
	var snap []string
	if evicted {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if evicted {
		s.save(snap, true)
	}
}

// Combination joins the entries at the given indices, in the given order,
// with no separator. Duplicate indices are allowed. Returns false if the
// board is empty or any index is out of range.
func (s *Store) Combination(indices []int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return "", false
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.entries) {
			return "", false
		}
	}
	var b strings.Builder
	for _, idx := range indices {
		b.WriteString(s.entries[idx])
	}
	return b.String(), true
}

// JoinAll joins every entry in board order with a newline separator.
// Returns false if the board is empty.
func (s *Store) JoinAll() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return "", false
	}
	return strings.Join(s.entries, "\n"), true
}

// Replace swaps the board contents wholesale, trimmed to the current
// capacity. The entries just came from disk, so nothing is reported to
// the Saver.
func (s *Store) Replace(entries []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entries) > s.maxSize {
		entries = entries[:s.maxSize]
	}
	s.entries = make([]string, len(entries))
	copy(s.entries, entries)
}

// snapshotLocked copies the current entries. Must be called with s.mu held.
func (s *Store) snapshotLocked() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// save hands a snapshot to the Saver, if one is configured.
func (s *Store) save(entries []string, force bool) {
	if s.saver != nil {
		s.saver.Save(entries, force)
	}
}
