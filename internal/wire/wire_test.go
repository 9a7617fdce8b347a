package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	out := New(nil, &buf)
	in := New(&buf, nil)

	payloads := []string{`{"action":"list"}`, "", "日本語テキスト", strings.Repeat("x", 100_000)}
	for _, p := range payloads {
		if err := out.WriteFrame([]byte(p)); err != nil {
			t.Fatalf("WriteFrame(%d bytes) error: %v", len(p), err)
		}
	}
	for _, want := range payloads {
		got, err := in.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame error: %v", err)
		}
		if string(got) != want {
			t.Fatalf("ReadFrame = %q, want %q", got, want)
		}
	}
	if _, err := in.ReadFrame(); err != io.EOF {
		t.Fatalf("ReadFrame on drained stream = %v, want io.EOF", err)
	}
}

func TestHeaderUsesNativeByteOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil, &buf).WriteFrame([]byte("abc")); err != nil {
		t.Fatalf("WriteFrame error: %v", err)
	}
	raw := buf.Bytes()
	if len(raw) != 4+3 {
		t.Fatalf("frame length = %d, want 7", len(raw))
	}
	if got := binary.NativeEndian.Uint32(raw[:4]); got != 3 {
		t.Fatalf("header decodes to %d in native order, want 3", got)
	}
	if string(raw[4:]) != "abc" {
		t.Fatalf("payload = %q, want %q", raw[4:], "abc")
	}
}

func TestReadFrameCleanEOF(t *testing.T) {
	c := New(bytes.NewReader(nil), nil)
	if _, err := c.ReadFrame(); err != io.EOF {
		t.Fatalf("ReadFrame on empty stream = %v, want bare io.EOF", err)
	}
}

func TestReadFrameTornHeader(t *testing.T) {
	c := New(bytes.NewReader([]byte{0x01, 0x02}), nil)
	_, err := c.ReadFrame()
	if err == nil || err == io.EOF {
		t.Fatalf("ReadFrame on torn header = %v, want wrapped error", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadFrame on torn header = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReadFrameTornPayload(t *testing.T) {
	var buf bytes.Buffer
	var header [4]byte
	binary.NativeEndian.PutUint32(header[:], 10)
	buf.Write(header[:])
	buf.WriteString("shrt")

	_, err := New(&buf, nil).ReadFrame()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadFrame on torn payload = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReadFrameRejectsOversizedHeader(t *testing.T) {
	var header [4]byte
	binary.NativeEndian.PutUint32(header[:], MaxMessageSize+1)
	_, err := New(bytes.NewReader(header[:]), nil).ReadFrame()
	if err == nil || !strings.Contains(err.Error(), "frame too large") {
		t.Fatalf("ReadFrame with oversized header = %v, want frame too large", err)
	}
}

func TestWriteFrameRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	err := New(nil, &buf).WriteFrame(make([]byte, MaxMessageSize+1))
	if err == nil || !strings.Contains(err.Error(), "frame too large") {
		t.Fatalf("WriteFrame oversized = %v, want frame too large", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("oversized WriteFrame still wrote %d bytes", buf.Len())
	}
}

func TestZeroLengthFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil, &buf).WriteFrame(nil); err != nil {
		t.Fatalf("WriteFrame(nil) error: %v", err)
	}
	got, err := New(&buf, nil).ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadFrame = %q, want empty payload", got)
	}
}

func TestRequestResponseOverWire(t *testing.T) {
	var buf bytes.Buffer
	out := New(nil, &buf)
	in := New(&buf, nil)

	five := 5
	if err := out.WriteRequest(&msg.Request{Action: msg.ActionPaste, Index: &five}); err != nil {
		t.Fatalf("WriteRequest error: %v", err)
	}
	req, err := in.ReadRequest()
	if err != nil {
		t.Fatalf("ReadRequest error: %v", err)
	}
	if req.Action != msg.ActionPaste || req.Index == nil || *req.Index != 5 {
		t.Fatalf("ReadRequest = %+v, want paste with index 5", req)
	}

	if err := out.WriteResponse(msg.Errorf("Invalid index or item not found")); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	resp, err := in.ReadResponse()
	if err != nil {
		t.Fatalf("ReadResponse error: %v", err)
	}
	if resp.Success || resp.Error != "Invalid index or item not found" {
		t.Fatalf("ReadResponse = %+v, want the invalid-index failure", resp)
	}
}

// A frame that parses as JSON but not as a request must surface a decode
// error rather than a frame error, so the serve loop can answer it.
func TestReadRequestDecodeError(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil, &buf).WriteFrame([]byte(`not json`)); err != nil {
		t.Fatalf("WriteFrame error: %v", err)
	}
	if _, err := New(&buf, nil).ReadRequest(); err == nil {
		t.Fatal("ReadRequest on junk payload succeeded, want error")
	}
}
