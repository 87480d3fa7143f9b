package http

import (
	"bytes"
	"errors"
)

var ErrBufferOverflow = errors.New("http: request buffer overflow")

// Framer reassembles complete HTTP/1.1 messages from a raw byte stream. Bytes
// arrive in arbitrary fragments; the framer accumulates them in a fixed
// capacity buffer and yields a message only once its full length, header
// block plus declared body, is present. Leftover bytes are carried over to
// the next read so pipelined requests drain from a single buffer fill.
type Framer struct {
	buf []byte
	end int // bytes buffered
	pos int // start of the next unconsumed request
}

func NewFramer(capacity int) *Framer {
	return &Framer{buf: make([]byte, capacity)}
}

// Append adds newly received bytes. Consumed bytes are compacted away first;
// if the remainder plus p would still exceed capacity the connection is over
// budget and ErrBufferOverflow is returned.
func (f *Framer) Append(p []byte) error {
	if f.pos > 0 {
		copy(f.buf, f.buf[f.pos:f.end])
		f.end -= f.pos
		f.pos = 0
	}

	if f.end+len(p) > len(f.buf) {
		return ErrBufferOverflow
	}

	copy(f.buf[f.end:], p)
	f.end += len(p)
	return nil
}

// Next yields the next complete request, or nil when more bytes are needed.
// Callers loop until nil to drain pipelined requests. The returned request
// aliases the framer's buffer and must be handled before the next Append.
func (f *Framer) Next() (*Request, error) {
	pending := f.buf[f.pos:f.end]

	hdrEnd := bytes.Index(pending, crlfcrlf)
	if hdrEnd < 0 {
		return nil, nil
	}
	block := pending[:hdrEnd+len(crlfcrlf)]

	bodyLen, err := contentLength(block)
	if err != nil {
		return nil, err
	}

	total := len(block) + bodyLen
	if len(pending) < total {
		return nil, nil
	}

	f.pos += total

	var req Request
	if err := req.parse(block, pending[len(block):total]); err != nil {
		return nil, err
	}
	return &req, nil
}

// Buffered returns the number of unconsumed bytes held for the next read.
func (f *Framer) Buffered() int {
	return f.end - f.pos
}
