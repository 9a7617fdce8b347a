package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/board"
)

type scriptedClip struct {
	mu   sync.Mutex
	text string
	ch   chan struct{}
}

func newScriptedClip() *scriptedClip {
	return &scriptedClip{ch: make(chan struct{}, 1)}
}

func (c *scriptedClip) set(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	c.ch <- struct{}{}
}

func (c *scriptedClip) Name() string { return "scripted" }

func (c *scriptedClip) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *scriptedClip) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *scriptedClip) Watch() <-chan struct{} { return c.ch }
func (c *scriptedClip) Close()                 {}

func waitForHead(t *testing.T, s *board.Store, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, ok := s.ItemAt(0); ok && got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	got, _ := s.ItemAt(0)
	t.Fatalf("board head = %q, want %q", got, want)
}

func TestRunCapturesClipboardChanges(t *testing.T) {
	s := board.New(10, nil, nil)
	c := newScriptedClip()
	p := New(s, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	c.set("first")
	waitForHead(t, s, "first")
	c.set("second")
	waitForHead(t, s, "second")
	if s.Size() != 2 {
		t.Fatalf("board size = %d, want 2", s.Size())
	}
}

func TestRunSkipsEmptyClipboard(t *testing.T) {
	s := board.New(10, nil, nil)
	c := newScriptedClip()
	p := New(s, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	c.set("")
	c.set("real")
	waitForHead(t, s, "real")
	if s.Size() != 1 {
		t.Fatalf("board size = %d, want 1", s.Size())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := board.New(10, nil, nil)
	c := newScriptedClip()
	p := New(s, c)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
