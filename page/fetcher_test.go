package page

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/bencyn-cli/bencyn/api"
)

const testBase = "http://api.test"

type reply struct {
	body string
	err  error
}

// stubFetcher answers by full request URL and records every call.
type stubFetcher struct {
	mu      sync.Mutex
	replies map[string]reply
	gets    []string
	posts   []any
}

func newStub() *stubFetcher {
	return &stubFetcher{replies: make(map[string]reply)}
}

func target(e api.Endpoint, params url.Values) string {
	if len(params) == 0 {
		return e.URL()
	}
	return e.URL() + "?" + params.Encode()
}

func (s *stubFetcher) on(e api.Endpoint, params url.Values, body string) *stubFetcher {
	s.replies[target(e, params)] = reply{body: body}
	return s
}

func (s *stubFetcher) fail(e api.Endpoint, params url.Values, err error) *stubFetcher {
	s.replies[target(e, params)] = reply{err: err}
	return s
}

func (s *stubFetcher) Get(_ context.Context, e api.Endpoint, params url.Values) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := target(e, params)
	s.gets = append(s.gets, t)
	r, ok := s.replies[t]
	if !ok {
		return nil, &api.RequestError{URL: t, StatusCode: http.StatusNotFound, Cause: errors.New("not found")}
	}
	if r.err != nil {
		return nil, r.err
	}
	return json.RawMessage(r.body), nil
}

func (s *stubFetcher) Post(_ context.Context, e api.Endpoint, body any) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, body)
	r, ok := s.replies[e.URL()]
	if !ok {
		return nil, &api.RequestError{URL: e.URL(), StatusCode: http.StatusNotFound, Cause: errors.New("not found")}
	}
	if r.err != nil {
		return nil, r.err
	}
	return json.RawMessage(r.body), nil
}

func (s *stubFetcher) postCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

func newTestAssembler() (*Assembler, *stubFetcher, *api.Registry) {
	stub := newStub()
	registry := api.NewRegistry(testBase)
	return New(stub, registry), stub, registry
}

var errUnavailable = &api.RequestError{URL: testBase, StatusCode: http.StatusInternalServerError, Cause: errors.New("internal server error")}
