//go:build !windows

package ipc

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSocketPathEnvOverride(t *testing.T) {
	t.Setenv("COPYBOARD_SOCKET", "/tmp/custom.sock")
	if got := SocketPath(); got != "/tmp/custom.sock" {
		t.Fatalf("SocketPath() = %q, want %q", got, "/tmp/custom.sock")
	}
}

func TestSocketPathPrefersRuntimeDir(t *testing.T) {
	t.Setenv("COPYBOARD_SOCKET", "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	want := filepath.Join("/run/user/1000", "copyboard.sock")
	if got := SocketPath(); got != want {
		t.Fatalf("SocketPath() = %q, want %q", got, want)
	}
}

func TestListenRemovesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copyboard.sock")
	t.Setenv("COPYBOARD_SOCKET", path)

	// Plant a leftover from a crashed daemon; binding must still succeed.
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("plant stale socket: %v", err)
	}
	l, err := Listen()
	if err != nil {
		t.Fatalf("Listen() over stale socket: %v", err)
	}
	l.Close()
}

func TestDialReachesListener(t *testing.T) {
	t.Setenv("COPYBOARD_SOCKET", filepath.Join(t.TempDir(), "copyboard.sock"))

	if IsRunning() {
		t.Fatal("IsRunning() = true before any listener exists")
	}

	l, err := Listen()
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer l.Close()

	if !IsRunning() {
		t.Fatal("IsRunning() = false while listener is up")
	}
	// The probe connection is still queued on the listener; take it out of
	// the way so the echo exchange below gets its own connection.
	if probe, err := l.Accept(); err == nil {
		probe.Close()
	}

	done := make(chan error, 1)
	go func() {
		c, err := l.Accept()
		if err != nil {
			done <- err
			return
		}
		defer c.Close()
		buf := make([]byte, 4)
		if _, err := io.ReadFull(c, buf); err != nil {
			done <- err
			return
		}
		_, err = c.Write(buf)
		done <- err
	}()

	c, err := Dial()
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer c.Close()

	if _, err := c.Write([]byte("ping")); err != nil {
		t.Fatalf("write: %v", err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(c, buf); err != nil {
		t.Fatalf("read echo: %v", err)
	}
	if string(buf) != "ping" {
		t.Fatalf("echo = %q, want %q", buf, "ping")
	}
	if err := <-done; err != nil {
		t.Fatalf("server side: %v", err)
	}
}
