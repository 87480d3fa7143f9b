package http

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	nethttp "net/http"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoPathHandler answers every request with its own path, which makes
// response ordering observable.
func echoPathHandler(ctx *RequestCtx) {
	ctx.Response.WithStatus(StatusOK).WithBody(ctx.Request.Path)
}

func startServer(t *testing.T, handler Handler) (net.Conn, *bufio.Reader) {
	t.Helper()

	serverConn, clientConn := net.Pipe()
	srv := NewServer("test", handler, discardLogger())
	go srv.ServeConn(serverConn)

	t.Cleanup(func() { clientConn.Close() })
	return clientConn, bufio.NewReader(clientConn)
}

func readResponse(t *testing.T, br *bufio.Reader) (int, string) {
	t.Helper()

	resp, err := nethttp.ReadResponse(br, nil)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServeConnPipelinedRequests(t *testing.T) {
	conn, br := startServer(t, echoPathHandler)

	raw := "GET /first HTTP/1.1\r\nHost: localhost\r\n\r\n" +
		"GET /second HTTP/1.1\r\nHost: localhost\r\n\r\n"
	if _, err := conn.Write([]byte(raw)); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{"/first", "/second"} {
		status, body := readResponse(t, br)
		if status != 200 {
			t.Errorf("status: got %d", status)
		}
		if body != want {
			t.Errorf("body: got %q, want %q", body, want)
		}
	}
}

func TestServeConnKeepAliveDisposition(t *testing.T) {
	conn, br := startServer(t, echoPathHandler)

	if _, err := conn.Write([]byte("GET / HTTP/1.1\r\nConnection: close\r\n\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := nethttp.ReadResponse(br, nil)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if got := resp.Header.Get("Connection"); got != "close" {
		t.Errorf("connection header: got %q", got)
	}

	// The server closes its side after a close-disposition response.
	if _, err := br.ReadByte(); err != io.EOF {
		t.Errorf("expected EOF after close, got %v", err)
	}
}

func TestServeConnMalformedRequestLine(t *testing.T) {
	conn, br := startServer(t, echoPathHandler)

	if _, err := conn.Write([]byte("NONSENSE\r\n\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	status, _ := readResponse(t, br)
	if status != 400 {
		t.Errorf("status: got %d, want 400", status)
	}
}

func TestServeConnOverflowingContentLength(t *testing.T) {
	conn, br := startServer(t, echoPathHandler)

	if _, err := conn.Write([]byte("PUT /dynamic/x HTTP/1.1\r\nContent-Length: 9999999999999999999\r\n\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	status, _ := readResponse(t, br)
	if status != 400 {
		t.Errorf("status: got %d, want 400", status)
	}
}

func TestServeConnBufferOverflow(t *testing.T) {
	conn, br := startServer(t, echoPathHandler)

	// More unterminated header bytes than the accumulation buffer can hold.
	junk := "GET / HTTP/1.1\r\nX-Junk: " + strings.Repeat("a", MaxRequestSize) + "\r\n\r\n"
	if _, err := conn.Write([]byte(junk)); err != nil {
		t.Fatalf("write: %v", err)
	}

	status, _ := readResponse(t, br)
	if status != 400 {
		t.Errorf("status: got %d, want 400", status)
	}
}

func BenchmarkServeConn(b *testing.B) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	srv := NewServer("bench", func(ctx *RequestCtx) {
		ctx.Response.WithStatus(StatusOK).WithText("OK")
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	go srv.ServeConn(serverConn)

	reqStr := "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n"
	reader := bufio.NewReader(clientConn)

	for i := 0; i < b.N; i++ {
		if _, err := clientConn.Write([]byte(reqStr)); err != nil {
			b.Fatalf("write error: %v", err)
		}

		resp, err := nethttp.ReadResponse(reader, nil)
		if err != nil {
			b.Fatalf("read error: %v", err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
