package http

import "io"

// Response accumulates a status, headers and body, then serializes them in
// one WriteTo call. The content-length header always reflects the exact byte
// length of Body.
type Response struct {
	Status uint16
	Body   []byte

	headers [][2][]byte
	scratch []byte
}

func (res *Response) Reset() {
	res.Status = StatusOK
	res.Body = res.Body[:0]
	res.headers = res.headers[:0]
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(body string) *Response {
	res.Body = append(res.Body[:0], body...)
	return res
}

func (res *Response) WithBody(body []byte) *Response {
	res.Body = append(res.Body[:0], body...)
	return res
}

func (res *Response) SetHeader(name, value []byte) {
	res.headers = append(res.headers, [2][]byte{name, value})
}

// WriteTo formats the status line, headers, content-length and body into a
// scratch buffer and delivers the whole message, retrying partial writes.
func (res *Response) WriteTo(w io.Writer) error {
	var num [20]byte

	buf := res.scratch[:0]
	buf = append(buf, statusLinePrefix...)
	buf = append(buf, num[:writeIntToBuffer(int(res.Status), num[:])]...)
	buf = append(buf, ' ')
	buf = append(buf, StatusText(res.Status)...)
	buf = append(buf, crlf...)

	for _, header := range res.headers {
		buf = append(buf, header[0]...)
		buf = append(buf, ':', ' ')
		buf = append(buf, header[1]...)
		buf = append(buf, crlf...)
	}

	buf = append(buf, contentLengthPrefix...)
	buf = append(buf, num[:writeIntToBuffer(len(res.Body), num[:])]...)
	buf = append(buf, crlf...)
	buf = append(buf, crlf...)
	buf = append(buf, res.Body...)
	res.scratch = buf

	return sendAll(w, buf)
}

// sendAll writes p fully, continuing after short writes. Only a transport
// error aborts delivery.
func sendAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		p = p[n:]
		if err != nil {
			return err
		}
	}
	return nil
}
