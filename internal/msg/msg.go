// Package msg defines the request/response protocol between the browser
// extension, the CLI, and the board daemon.
//
// Every exchange is one JSON request answered by exactly one JSON response,
// carried in the length-prefixed frames of internal/wire. The core action
// vocabulary matches the browser extension; the extended actions are only
// spoken between the CLI and the daemon socket.
package msg

import (
	"encoding/json"
	"fmt"
)

// Action identifies the requested operation.
type Action string

const (
	ActionAdd         Action = "add"
	ActionList        Action = "list"
	ActionPaste       Action = "paste"
	ActionPasteDirect Action = "paste_direct"
	ActionClear       Action = "clear"

	// Extended actions, served on the daemon socket.
	ActionRemove   Action = "remove"
	ActionPasteAll Action = "paste_all"
	ActionCombo    Action = "paste_combo"
	ActionPreview  Action = "preview"
	ActionStatus   Action = "status"
)

// Request is a single command for the host or daemon.
type Request struct {
	Action Action `json:"action"`

	// add: the text to place on the board
	Content string `json:"content,omitempty"`

	// paste, paste_direct, remove: the board index. When absent, paste
	// fails, paste_direct targets the head entry and remove drops the
	// oldest entry.
	Index *int `json:"index,omitempty"`

	// paste_combo: indices joined in the given order
	Indices []int `json:"indices,omitempty"`

	// paste_all, paste_combo: also fire the paste keystroke after
	// staging the clipboard
	Paste bool `json:"paste,omitempty"`

	// preview: truncation width, 0 selects the default
	MaxChars int `json:"max_chars,omitempty"`
}

// Response is the reply to a single Request.
type Response struct {
	Success bool `json:"success"`

	// list: board entries, most recent first
	Items []string `json:"items,omitempty"`

	// paste, paste_all, paste_combo: the resolved text
	Content string `json:"content,omitempty"`

	// preview: display lines keyed by board index
	Preview map[int]string `json:"preview,omitempty"`

	// status
	Size    int    `json:"size,omitempty"`
	MaxSize int    `json:"max_size,omitempty"`
	Dirty   bool   `json:"dirty,omitempty"`
	Path    string `json:"path,omitempty"`

	Error string `json:"error,omitempty"`
}

// Encode serialises the request to JSON.
func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRequest parses a request frame. Callers answer a parse failure with
// an error response instead of dropping the frame.
func DecodeRequest(b []byte) (*Request, error) {
	var r Request
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("request decode: %w", err)
	}
	return &r, nil
}

// Encode serialises the response to JSON.
func (r *Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeResponse parses a response frame.
func DecodeResponse(b []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("response decode: %w", err)
	}
	return &r, nil
}

// OK returns a bare successful response.
func OK() *Response {
	return &Response{Success: true}
}

// Errorf builds a failed response from a format string.
func Errorf(format string, args ...any) *Response {
	return &Response{Error: fmt.Sprintf(format, args...)}
}

// IndexOf returns the request index or the given default when absent.
func (r *Request) IndexOf(def int) int {
	if r.Index == nil {
		return def
	}
	return *r.Index
}
