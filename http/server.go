package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"syscall"
	"time"
)

// DefaultReadTimeout caps how long a connection may sit idle mid-request so a
// stalled client cannot hold its worker forever.
const DefaultReadTimeout = 60 * time.Second

type Server struct {
	Name        string
	Handler     Handler
	Logger      *slog.Logger
	ReadTimeout time.Duration
}

func NewServer(name string, handler Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		Name:        name,
		Handler:     handler,
		Logger:      logger,
		ReadTimeout: DefaultReadTimeout,
	}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	return s.Serve(listener)
}

func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Error("accept failed", "error", err)
			continue
		}

		go s.ServeConn(conn)
	}
}

// ServeConn runs one connection to completion: read, frame, handle, respond.
// Every framed request in a single read is handled before the next blocking
// read, which is what serves pipelined clients.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	framer := NewFramer(MaxRequestSize)
	chunk := make([]byte, DefaultReadBufferSize)
	var reqCtx RequestCtx

	for {
		if s.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.ReadTimeout))
		}

		n, err := conn.Read(chunk)
		if err != nil {
			// End of stream with a partial request buffered is not an error;
			// the fragment is discarded with the connection.
			if err != io.EOF && !errors.Is(err, net.ErrClosed) {
				s.Logger.Debug("connection read failed", "error", err)
			}
			return
		}

		if err := framer.Append(chunk[:n]); err != nil {
			s.reject(conn, &reqCtx, "Request Too Long")
			return
		}

		for {
			req, err := framer.Next()
			if err != nil {
				s.reject(conn, &reqCtx, "Invalid Request Format")
				return
			}
			if req == nil {
				break // incomplete, wait for more bytes
			}

			reqCtx.Request = req
			reqCtx.Response.Reset()
			s.Handler(&reqCtx)

			keepAlive := req.KeepAlive()
			if keepAlive {
				reqCtx.Response.SetHeader(headerConnection, headerKeepAlive)
			} else {
				reqCtx.Response.SetHeader(headerConnection, headerClose)
			}

			if err := reqCtx.Response.WriteTo(conn); err != nil {
				if !errors.Is(err, syscall.EPIPE) {
					s.Logger.Error("send failed", "error", err)
				}
				return
			}

			if !keepAlive {
				return
			}
		}
	}
}

// reject answers a framing failure with 400 and closes the connection. The
// failure is scoped to this connection; the process carries on.
func (s *Server) reject(conn net.Conn, reqCtx *RequestCtx, reason string) {
	reqCtx.Response.Reset()
	reqCtx.Response.WithStatus(StatusBadRequest).WithText(reason)
	reqCtx.Response.SetHeader(headerConnection, headerClose)

	if err := reqCtx.Response.WriteTo(conn); err != nil && !errors.Is(err, syscall.EPIPE) {
		s.Logger.Error("send failed", "error", err)
	}
}
