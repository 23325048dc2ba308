// Package network owns the HTTP transport shared by every outgoing request.
package network

import (
	"net/http"
	"time"

	"github.com/bencyn-cli/bencyn/log"
	"golang.org/x/net/http2"
)

// Client carries no overall timeout of its own. Callers bound each request
// with a context deadline so that a timeout can be told apart from other failures.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 32
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.TLSHandshakeTimeout = 10 * time.Second
	t.ExpectContinueTimeout = time.Second

	// Idle HTTP/2 connections are pinged so a dead one fails fast
	// instead of hanging until the request deadline.
	h2, err := http2.ConfigureTransports(t)
	if err != nil {
		log.Warnf("network: http2 unavailable, falling back to HTTP/1.1: %s", err)
		return t
	}
	h2.ReadIdleTimeout = 30 * time.Second
	h2.PingTimeout = 10 * time.Second

	return t
}
