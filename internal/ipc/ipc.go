// Package ipc provides the local socket channel CLI commands use to reach a
// running copyboard monitor daemon, so every invocation shares the daemon's
// live board instead of racing it over the board file.
//
// The channel carries the same length-prefixed JSON frames as the native
// messaging host, served over a Unix domain socket (a named pipe on Windows).
// The daemon listens; CLI sub-commands probe for it and fall back to opening
// the board file directly when it is absent.
package ipc

import (
	"net"
	"os"
)

// SocketPath returns the platform-appropriate path for the daemon socket.
//
//   - Linux:   $XDG_RUNTIME_DIR/copyboard.sock, else $TMPDIR/copyboard.sock
//   - macOS:   $TMPDIR/copyboard.sock
//   - Windows: \\.\pipe\copyboard
//
// $COPYBOARD_SOCKET overrides all of the above.
func SocketPath() string {
	if s := os.Getenv("COPYBOARD_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a monitor daemon appears to be listening on the
// socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := Dial()
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the daemon socket.
func Listen() (net.Listener, error) {
	return listenIPC(SocketPath())
}

// Dial connects to a listening monitor daemon.
func Dial() (net.Conn, error) {
	return dialIPC(SocketPath())
}
