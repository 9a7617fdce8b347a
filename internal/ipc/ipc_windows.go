//go:build windows

package ipc

import (
	"net"

	"github.com/Microsoft/go-winio"
)

func socketPath() string { return `\\.\pipe\copyboard` }

func listenIPC(path string) (net.Listener, error) {
	return winio.ListenPipe(path, nil)
}

func dialIPC(path string) (net.Conn, error) {
	return winio.DialPipe(path, nil)
}
