// Package wire implements the framed JSON transport spoken between the
// native messaging host, the monitor daemon, and CLI clients.
//
// Wire format, both directions:
//
//	<4-byte unsigned length><length bytes of UTF-8 JSON>
//
// The length prefix uses the byte order of the host CPU, as the browser
// native messaging protocol specifies. Both ends of a connection always run
// on the same machine, so frames never cross an endianness boundary; they
// are not portable between machines.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/Dennis-J-Carroll/copyboard-app/internal/msg"
)

const (
	// MaxMessageSize is the largest frame we will read or write (16 MiB).
	MaxMessageSize = 16 * 1024 * 1024

	headerSize = 4
)

// Conn frames JSON messages over a duplex byte stream. The reader side is
// not safe for concurrent use; writes are serialised internally.
type Conn struct {
	r   io.Reader
	w   io.Writer
	wmu sync.Mutex
	nc  net.Conn // non-nil when the stream is a network connection
}

// New wraps a read and a write stream. For the stdio host these are stdin
// and stdout; for socket connections pass the net.Conn as both.
func New(r io.Reader, w io.Writer) *Conn {
	c := &Conn{r: r, w: w}
	if nc, ok := r.(net.Conn); ok {
		c.nc = nc
	}
	return c
}

// SetDeadline sets or clears a deadline on both directions when the
// underlying stream is a net.Conn, and is a no-op otherwise.
func (c *Conn) SetDeadline(d time.Duration) {
	if c.nc == nil {
		return
	}
	if d == 0 {
		_ = c.nc.SetDeadline(time.Time{})
	} else {
		_ = c.nc.SetDeadline(time.Now().Add(d))
	}
}

// Close closes the underlying stream when it is a net.Conn. Stdio streams
// are left to the process lifecycle.
func (c *Conn) Close() error {
	if c.nc != nil {
		return c.nc.Close()
	}
	return nil
}

// ReadFrame reads one length-prefixed frame. A stream that ends before the
// first header byte returns io.EOF unwrapped, which callers treat as the
// peer finishing cleanly. A stream that ends mid-frame is an error.
func (c *Conn) ReadFrame() ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(c.r, header); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame header: %w", err)
	}
	length := binary.NativeEndian.Uint32(header)
	if length > MaxMessageSize {
		return nil, fmt.Errorf("frame too large (%d bytes)", length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload: %w", err)
	}
	return payload, nil
}

// WriteFrame writes one length-prefixed frame.
func (c *Conn) WriteFrame(payload []byte) error {
	if len(payload) > MaxMessageSize {
		return fmt.Errorf("frame too large (%d bytes)", len(payload))
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	var header [headerSize]byte
	binary.NativeEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := c.w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := c.w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// ReadRequest reads one frame and decodes it as a Request.
func (c *Conn) ReadRequest() (*msg.Request, error) {
	raw, err := c.ReadFrame()
	if err != nil {
		return nil, err
	}
	return msg.DecodeRequest(raw)
}

// WriteRequest encodes req and writes it as one frame.
func (c *Conn) WriteRequest(req *msg.Request) error {
	raw, err := req.Encode()
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.WriteFrame(raw)
}

// ReadResponse reads one frame and decodes it as a Response.
func (c *Conn) ReadResponse() (*msg.Response, error) {
	raw, err := c.ReadFrame()
	if err != nil {
		return nil, err
	}
	return msg.DecodeResponse(raw)
}

// WriteResponse encodes resp and writes it as one frame.
func (c *Conn) WriteResponse(resp *msg.Response) error {
	raw, err := resp.Encode()
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return c.WriteFrame(raw)
}
