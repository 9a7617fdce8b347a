// Package host dispatches protocol requests against the board and serves
// them over framed streams: the browser extension's stdio channel and the
// daemon's local socket.
//
// The core action vocabulary and its response shapes, including the exact
// error strings, are part of the browser extension protocol and must not
// drift.
package host

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"runtime/debug"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/board"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/clip"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/paste"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/persist"
	"github.com/Dennis-J-Carroll/copyboard-app/internal/wire"
)

// Host answers protocol requests against a single board.
type Host struct {
	store *board.Store
	clip  clip.Backend
	paste paste.Dispatcher
	saver *persist.Manager // optional, reported by the status action
}

// New returns a Host over the given collaborators. saver may be nil when
// no persistence state should be reported.
func New(store *board.Store, cb clip.Backend, pd paste.Dispatcher, saver *persist.Manager) *Host {
	return &Host{store: store, clip: cb, paste: pd, saver: saver}
}

// Handle answers one request. It never panics: a panic in an action
// handler is logged and returned to the peer as an error response.
func (h *Host) Handle(req *msg.Request) (resp *msg.Response) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("request handler panicked",
				"action", req.Action,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			resp = msg.Errorf("internal error: %v", r)
		}
	}()

	switch req.Action {
	case msg.ActionAdd:
		return h.add(req)
	case msg.ActionList:
		return &msg.Response{Success: true, Items: h.store.Items()}
	case msg.ActionPaste:
		return h.pasteLookup(req)
	case msg.ActionPasteDirect:
		return h.pasteDirect(req)
	case msg.ActionClear:
		h.store.Clear()
		return msg.OK()
	case msg.ActionRemove:
		return h.remove(req)
	case msg.ActionPasteAll:
		return h.pasteAll(req)
	case msg.ActionCombo:
		return h.combo(req)
	case msg.ActionPreview:
		return &msg.Response{Success: true, Preview: h.store.Preview(req.MaxChars)}
	case msg.ActionStatus:
		return h.status()
	default:
		return msg.Errorf("Unknown action: %s", req.Action)
	}
}

// add stages the content on the clipboard and places it at the head of the
// board.
func (h *Host) add(req *msg.Request) *msg.Response {
	if req.Content == "" {
		return msg.Errorf("No content provided")
	}
	if err := h.clip.Write(req.Content); err != nil {
		slog.Warn("clipboard write failed", "err", err)
	}
	h.store.Insert(req.Content)
	return msg.OK()
}

// pasteLookup resolves the entry at the requested index and hands it back
// without touching the clipboard; the extension places the text itself.
// A request without an index fails.
func (h *Host) pasteLookup(req *msg.Request) *msg.Response {
	if req.Index != nil {
		if content, ok := h.store.ItemAt(*req.Index); ok {
			return &msg.Response{Success: true, Content: content}
		}
	}
	return msg.Errorf("Invalid index or item not found")
}

// pasteDirect stages the entry on the clipboard and fires the paste
// keystroke. The index defaults to the head entry. Failure is a bare
// {"success": false} with no error text, matching the extension protocol.
func (h *Host) pasteDirect(req *msg.Request) *msg.Response {
	content, ok := h.store.ItemAt(req.IndexOf(0))
	if !ok {
		return &msg.Response{}
	}
	if err := h.clip.Write(content); err != nil {
		slog.Warn("clipboard write failed", "err", err)
	}
	h.paste.Trigger()
	return msg.OK()
}

// remove drops the entry at the requested index, or the oldest entry when
// no index is given.
func (h *Host) remove(req *msg.Request) *msg.Response {
	var ok bool
	if req.Index != nil {
		ok = h.store.RemoveAt(*req.Index)
	} else {
		ok = h.store.RemoveOldest()
	}
	if !ok {
		return msg.Errorf("Invalid index or item not found")
	}
	return msg.OK()
}

// pasteAll joins the whole board with newlines, stages it on the clipboard
// and optionally fires the paste keystroke.
func (h *Host) pasteAll(req *msg.Request) *msg.Response {
	content, ok := h.store.JoinAll()
	if !ok {
		return msg.Errorf("Board is empty")
	}
	if err := h.clip.Write(content); err != nil {
		slog.Warn("clipboard write failed", "err", err)
	}
	if req.Paste {
		h.paste.Trigger()
	}
	return &msg.Response{Success: true, Content: content}
}

// combo joins the entries at the requested indices, stages the result on
// the clipboard and optionally fires the paste keystroke.
func (h *Host) combo(req *msg.Request) *msg.Response {
	content, ok := h.store.Combination(req.Indices)
	if !ok {
		return msg.Errorf("Invalid indices provided")
	}
	if err := h.clip.Write(content); err != nil {
		slog.Warn("clipboard write failed", "err", err)
	}
	if req.Paste {
		h.paste.Trigger()
	}
	return &msg.Response{Success: true, Content: content}
}

// status reports board and persistence state.
func (h *Host) status() *msg.Response {
	resp := &msg.Response{
		Success: true,
		Size:    h.store.Size(),
		MaxSize: h.store.MaxSize(),
	}
	if h.saver != nil {
		dirty, _, _ := h.saver.State()
		resp.Dirty = dirty
		resp.Path = h.saver.Path()
	}
	return resp
}

// Serve answers requests on conn until the peer closes the stream. Every
// complete frame gets exactly one response; a frame that does not parse is
// answered with an error response rather than dropped.
func (h *Host) Serve(conn *wire.Conn) error {
	for {
		raw, err := conn.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		var resp *msg.Response
		req, derr := msg.DecodeRequest(raw)
		if derr != nil {
			slog.Warn("bad request frame", "err", derr)
			resp = msg.Errorf("invalid request: %v", derr)
		} else {
			resp = h.Handle(req)
		}

		if werr := conn.WriteResponse(resp); werr != nil {
			return fmt.Errorf("write response: %w", werr)
		}
	}
}

// ServeListener accepts connections and serves each on its own goroutine
// until ln is closed.
func (h *Host) ServeListener(ln net.Listener) {
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			slog.Warn("accept failed", "err", err)
			continue
		}
		go func(nc net.Conn) {
			defer nc.Close()
			log := slog.With("peer", nc.RemoteAddr())
			log.Debug("client connected")
			if err := h.Serve(wire.New(nc, nc)); err != nil {
				log.Info("connection closed", "err", err)
			}
		}(c)
	}
}
