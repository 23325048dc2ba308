package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/network"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// DefaultTimeout bounds every request unless configured otherwise.
const DefaultTimeout = 30 * time.Second

// Client performs single-attempt JSON requests against the content API.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// NewClient uses the shared transport. A non-positive timeout means DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	return NewClientWith(network.Client, timeout)
}

// NewClientWith uses h for transport.
func NewClientWith(h *http.Client, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: h, timeout: timeout}
}

// ClientFromConfig reads api.timeout in seconds.
func ClientFromConfig() *Client {
	return NewClient(time.Duration(viper.GetInt(key.APITimeout)) * time.Second)
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get fetches e with params appended to its query string.
func (c *Client) Get(ctx context.Context, e Endpoint, params url.Values) (json.RawMessage, error) {
	target, err := withParams(e.URL(), params)
	if err != nil {
		return nil, &RequestError{URL: e.URL(), Cause: err}
	}
	return c.do(ctx, http.MethodGet, target, nil)
}

// Post sends body encoded as JSON to e.
func (c *Client) Post(ctx context.Context, e Endpoint, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, e.URL(), payload)
}

func (c *Client) do(ctx context.Context, method, target string, payload []byte) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	id := uuid.NewString()
	logger := log.Request(id, method, target)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &RequestError{URL: target, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("X-Request-ID", id)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	logger.Debug("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		err = c.classify(ctx, target, err)
		logger.WithError(err).Warn("request failed")
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		err = c.classify(ctx, target, err)
		logger.WithError(err).Warn("reading response failed")
		return nil, err
	}

	logger = logger.WithField("status", resp.StatusCode).WithField("elapsed", time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &RequestError{URL: target, StatusCode: resp.StatusCode, Cause: errors.New(http.StatusText(resp.StatusCode))}
		logger.Warn("unexpected status")
		return nil, err
	}

	logger.Debug("request settled")
	return raw, nil
}

// classify separates timeouts from every other transport failure.
func (c *Client) classify(ctx context.Context, target string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: target, After: c.timeout, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{URL: target, After: c.timeout, Cause: err}
	}

	return &RequestError{URL: target, Cause: err}
}

func withParams(target string, params url.Values) (string, error) {
	if len(params) == 0 {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}

	query := u.Query()
	for k, values := range params {
		for _, v := range values {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}
