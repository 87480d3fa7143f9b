package http

const (
	// MaxRequestSize bounds the per-connection accumulation buffer. A request
	// that does not fit (headers plus declared body) is rejected, never grown.
	MaxRequestSize = 8 * 1024

	DefaultReadBufferSize = 4096 // 4kB
)

type Handler func(ctx *RequestCtx)

var (
	crlf     = []byte("\r\n")
	crlfcrlf = []byte("\r\n\r\n")

	protocolHttp11 = []byte("HTTP/1.1")

	headerContentLength = []byte("Content-Length")
	headerConnection    = []byte("Connection")
	headerKeepAlive     = []byte("keep-alive")
	headerClose         = []byte("close")

	statusLinePrefix    = []byte("HTTP/1.1 ")
	contentLengthPrefix = []byte("content-length: ")
)
