// Command streamhttpd is a minimal accept-loop server built on top of
// pkg/http. It is a worked example of the parser's collaborator contract,
// not a production HTTP server: it reads a request header section off each
// accepted connection, logs what it parsed, and writes back a canned
// response describing either the request or the parse failure. Response
// generation and body handling are explicitly out of scope for the parser
// itself (see the module's non-goals) — this command exists only to show a
// caller how to drive Decoder.DecodeRequest against a live net.Conn.
package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	streamhttp "github.com/shapestone/shape-http/pkg/http"
)

const (
	listenAddr     = "0.0.0.0:8000"
	listenNetwork  = "tcp"
	readTimeout    = 300 * time.Second
	maxHeaderBytes = 64 * 1024
)

// serverConfig holds the handful of knobs this example exposes. There is no
// flag-parsing or config-file library anywhere in the reference corpus, so
// this stays a plain struct literal rather than reaching for one.
type serverConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	MaxHeaderBytes int
}

func defaultConfig() serverConfig {
	return serverConfig{
		Addr:           listenAddr,
		ReadTimeout:    readTimeout,
		MaxHeaderBytes: maxHeaderBytes,
	}
}

func main() {
	cfg := defaultConfig()

	listener, err := net.Listen(listenNetwork, cfg.Addr)
	if err != nil {
		log.Fatalf("streamhttpd: listen on %s: %v", cfg.Addr, err)
	}
	log.Printf("streamhttpd: listening on %s", cfg.Addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("streamhttpd: accept failed: %v", err)
			continue
		}
		go handleConnection(conn, cfg)
	}
}

// handleConnection parses exactly one request header section from conn and
// writes back a response. Keep-alive, pipelining and body relaying are left
// to a real server; this command closes the connection after one exchange.
func handleConnection(conn net.Conn, cfg serverConfig) {
	id := uuid.New().String()
	defer conn.Close()
	defer log.Printf("streamhttpd[%s]: connection closed", id)

	log.Printf("streamhttpd[%s]: accepted connection from %s", id, conn.RemoteAddr())

	if err := conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)); err != nil {
		log.Printf("streamhttpd[%s]: set read deadline: %v", id, err)
		return
	}

	dec := streamhttp.NewDecoderWithLimit(conn, cfg.MaxHeaderBytes)
	req, body, err := dec.DecodeRequest()
	if err != nil {
		writeParseError(conn, id, err)
		return
	}

	log.Printf("streamhttpd[%s]: %s %s %s (%d headers)", id, req.Method, req.URL, req.Protocol, len(req.Headers))
	writeRequestSummary(conn, id, req, body)
}

// writeRequestSummary renders a plain-text description of the parsed
// request. It drains whatever trailing bytes Decoder.DecodeRequest handed
// back (the start of the body, if any) only to report their length — this
// command never interprets body content, matching the parser's non-goals.
func writeRequestSummary(w io.Writer, id string, req *streamhttp.Request, body io.Reader) {
	trailing, _ := io.Copy(io.Discard, body)

	fmt.Fprintf(w, "HTTP/1.1 200 OK\r\nX-Request-Id: %s\r\nContent-Type: text/plain; charset=utf-8\r\nConnection: close\r\n\r\n", id)
	fmt.Fprintf(w, "streamhttpd received:\r\n")
	fmt.Fprintf(w, "  method:   %s\r\n", req.Method)
	fmt.Fprintf(w, "  url:      %s\r\n", req.URL)
	fmt.Fprintf(w, "  protocol: %s\r\n", req.Protocol)
	for _, h := range req.Headers {
		fmt.Fprintf(w, "  header:   %s: %s\r\n", h.Key, h.Value)
	}
	fmt.Fprintf(w, "  trailing octets after header section: %d\r\n", trailing)
}

// writeParseError maps a parse failure to a status line per
// pkg/http.ParseError.Status and writes a short error body.
func writeParseError(w io.Writer, id string, err error) {
	status := http.StatusBadRequest
	if pe, ok := err.(*streamhttp.ParseError); ok {
		status = pe.Status()
		log.Printf("streamhttpd[%s]: parse error: %s (kind=%v offset=%d)", id, pe.Msg, pe.Kind, pe.Offset)
	} else {
		log.Printf("streamhttpd[%s]: connection error: %v", id, err)
	}
	reason := http.StatusText(status)
	fmt.Fprintf(w, "HTTP/1.1 %d %s\r\nX-Request-Id: %s\r\nContent-Type: text/plain; charset=utf-8\r\nConnection: close\r\n\r\n", status, reason, id)
	fmt.Fprintf(w, "%v\r\n", err)
}
