package http

import (
	"bytes"
	"errors"
)

var ErrInvalidLength = errors.New("http: invalid Content-Length header")

// headerValue extracts the trimmed value of the first case-insensitive match
// of name inside a raw header block. Matching is substring based: the name
// may be found anywhere in the block, whitespace and the colon separator are
// skipped, and the value runs to the next line terminator. A name that is a
// substring of another header's name or value can therefore false-match.
func headerValue(block []byte, name []byte) ([]byte, bool) {
	i := indexFold(block, name)
	if i < 0 {
		return nil, false
	}

	rest := block[i+len(name):]
	j := 0
	for j < len(rest) && (rest[j] == ' ' || rest[j] == ':' || rest[j] == '\t') {
		j++
	}
	rest = rest[j:]

	end := bytes.Index(rest, crlf)
	if end < 0 {
		return nil, false
	}

	return bytes.TrimSpace(rest[:end]), true
}

// contentLength derives the declared body length from a header block.
// Absent means zero; a malformed value is rejected so unvalidated bytes can
// never pass as a body.
func contentLength(block []byte) (int, error) {
	v, found := headerValue(block, headerContentLength)
	if !found {
		return 0, nil
	}

	n, err := atoi(v)
	if err != nil {
		return 0, ErrInvalidLength
	}
	// A declared body that cannot fit the accumulation buffer can never be
	// framed; reject it up front instead of waiting for the buffer to fill.
	if n > MaxRequestSize {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// indexFold reports the first case-insensitive occurrence of sub in s.
func indexFold(s, sub []byte) int {
	if len(sub) == 0 {
		return 0
	}

	for i := 0; i+len(sub) <= len(s); i++ {
		if bytes.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
