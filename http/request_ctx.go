package http

// RequestCtx pairs one framed request with the response under construction.
// One instance is reused for every request on a connection.
type RequestCtx struct {
	Request  *Request
	Response Response
}
