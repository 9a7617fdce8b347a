package persist

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Watch follows the board file and reports rewrites made by other
// processes. Writes that went through this Manager are suppressed by
// comparing file content against the last state it read or wrote. The
// watcher goroutine stops when done is closed.
func (m *Manager) Watch(done <-chan struct{}, onChange func(entries []string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory rather than the file: atomic rename-over
	// replaces the inode, which silently drops a watch on the path itself.
	if err := w.Add(filepath.Dir(m.path)); err != nil {
		w.Close()
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != m.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if entries, changed := m.reloadIfChanged(); changed {
					slog.Debug("board file changed externally", "path", m.path, "entries", len(entries))
					onChange(entries)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("board watch error", "error", err)
			}
		}
	}()
	return nil
}

// reloadIfChanged re-reads the board file and reports whether its content
// differs from the last state this process read or wrote.
func (m *Manager) reloadIfChanged() ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := readBoardFile(m.path)
	if slices.Equal(entries, m.cached) {
		return nil, false
	}
	m.cached = entries
	m.loaded = true
	return append([]string(nil), entries...), true
}
