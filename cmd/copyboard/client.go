package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/clip"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/host"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/ipc"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/paste"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/wire"
)

const daemonTimeout = 5 * time.Second

// request routes req to a running monitor daemon over the local socket, or
// applies it to the file-backed board in-process when no daemon is up. The
// daemon path is preferred: the daemon owns the live board, and clipboard
// content staged by it survives this process exiting (on X11 a selection
// dies with the process that set it).
func request(v *viper.Viper, req *msg.Request) (*msg.Response, error) {
	if ipc.IsRunning() {
		resp, err := viaDaemon(req)
		if err == nil {
			return resp, nil
		}
		slog.Warn("daemon unreachable, using board file directly", "err", err)
	}
	return viaFile(v, req)
}

// viaDaemon sends one framed request over the daemon socket and waits for
// the response.
func viaDaemon(req *msg.Request) (*msg.Response, error) {
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	defer conn.Close()

	wc := wire.New(conn, conn)
	wc.SetDeadline(daemonTimeout)
	if err := wc.WriteRequest(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return wc.ReadResponse()
}

// viaFile applies req to the board file in-process and force-saves, so a
// short-lived CLI invocation never leaves staged writes behind.
func viaFile(v *viper.Viper, req *msg.Request) (*msg.Response, error) {
	store, mgr, err := openStore(v)
	if err != nil {
		return nil, err
	}
	defer mgr.ForceSave()

	backend := clip.NewHeadless()
	if stagesClipboard(req.Action) {
		backend = clip.New(0)
	}
	defer backend.Close()

	h := host.New(store, backend, paste.New(), mgr)
	return h.Handle(req), nil
}

// stagesClipboard reports whether an action writes the system clipboard.
// Read-only actions get a headless backend so they work on displayless
// systems without warnings.
func stagesClipboard(a msg.Action) bool {
	switch a {
	case msg.ActionAdd, msg.ActionPasteDirect, msg.ActionPasteAll, msg.ActionCombo:
		return true
	}
	return false
}

// respErr converts a failed response into an error, or nil for success.
func respErr(resp *msg.Response) error {
	if resp.Success {
		return nil
	}
	if resp.Error == "" {
		return errors.New("request failed")
	}
	return errors.New(resp.Error)
}
