package http

import (
	"bytes"
	"errors"
)

var ErrMalformedRequest = errors.New("http: malformed request line")

// Request is one complete framed message. Its byte slices alias the framer's
// buffer and stay valid until the next Append on that framer.
type Request struct {
	Method []byte
	Path   []byte
	Proto  []byte

	header []byte // raw header block, terminator included
	Body   []byte
}

// parse splits the request line into its three whitespace separated tokens.
func (req *Request) parse(block, body []byte) error {
	line := block
	if i := bytes.Index(line, crlf); i >= 0 {
		line = line[:i]
	}

	fields := bytes.Fields(line)
	if len(fields) < 3 {
		return ErrMalformedRequest
	}

	req.Method = fields[0]
	req.Path = fields[1]
	req.Proto = fields[2]
	req.header = block
	req.Body = body
	return nil
}

// HeaderValue returns the trimmed value of the first case-insensitive match
// of name in the request's header block.
func (req *Request) HeaderValue(name string) ([]byte, bool) {
	return headerValue(req.header, []byte(name))
}

// KeepAlive reports the connection disposition the client asked for. Without
// an explicit Connection header, HTTP/1.1 defaults to keep-alive.
func (req *Request) KeepAlive() bool {
	if v, found := headerValue(req.header, headerConnection); found {
		return bytes.EqualFold(v, headerKeepAlive)
	}
	return bytes.Equal(req.Proto, protocolHttp11)
}
