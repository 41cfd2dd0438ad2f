package jsonrpc1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ClientConfig holds the settings a Client is built from.
type ClientConfig struct {
	URL     string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gte=0"`
	Debug   bool

	httpClient *http.Client
	sink       DebugSink
}

// ClientOption customizes a ClientConfig.
type ClientOption func(*ClientConfig)

// WithDebug enables the request/response transcript.
func WithDebug(debug bool) ClientOption {
	return func(conf *ClientConfig) {
		conf.Debug = debug
	}
}

// WithDebugSink sets where transcripts go when debug is enabled. Defaults
// to LoggerSink.
func WithDebugSink(sink DebugSink) ClientOption {
	return func(conf *ClientConfig) {
		conf.sink = sink
	}
}

// WithTimeout limits the duration of each call. Zero means no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(conf *ClientConfig) {
		conf.Timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used to reach the endpoint. The
// client's own timeout is overridden when WithTimeout is given.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(conf *ClientConfig) {
		conf.httpClient = client
	}
}

// Client is a JSON-RPC 1.0 client talking to a single HTTP endpoint.
type Client struct {
	mu sync.Mutex

	// currentID is the id of every request made by the client. It starts
	// at 1 and is never advanced, so responses are always matched against 1.
	currentID    int64
	notification bool

	debug      bool
	sink       DebugSink
	transcript strings.Builder

	poster *messagePoster
}

// NewClient creates a client for the endpoint at url.
func NewClient(url string, opts ...ClientOption) (*Client, error) {
	conf := ClientConfig{URL: url}
	for _, opt := range opts {
		opt(&conf)
	}

	if err := Val.Struct(conf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	httpClient := &http.Client{}
	if conf.httpClient != nil {
		c := *conf.httpClient
		httpClient = &c
	}
	if conf.Timeout > 0 {
		httpClient.Timeout = conf.Timeout
	}

	sink := conf.sink
	if sink == nil {
		sink = LoggerSink{}
	}

	return &Client{
		currentID: 1,
		debug:     conf.Debug,
		sink:      sink,
		poster:    newMessagePoster(conf.URL, httpClient),
	}, nil
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.poster.url
}

// SetNotification switches the client between notifications and requests.
// It applies to all subsequent calls.
func (c *Client) SetNotification(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notification = enabled
}

// Notification reports whether calls are sent as notifications.
func (c *Client) Notification() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.notification
}

// Transcript returns the debug output accumulated over all calls.
func (c *Client) Transcript() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.transcript.String()
}

// Invoke calls method with positional params and returns the raw result.
// params must be nil, a slice or an array. In notification mode the
// response is not inspected and the result is always true.
func (c *Client) Invoke(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if method == "" {
		return nil, ErrInvalidMethodName
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	bparams, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if string(bparams) == "null" {
		bparams = []byte("[]")
	}

	c.mu.Lock()
	notification := c.notification
	id := c.currentID
	c.mu.Unlock()

	req := rpcRequest{
		Method: method,
		Params: json.RawMessage(bparams),
	}
	if !notification {
		req.ID = &id
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var tr transcript
	if c.debug {
		tr.request(payload)
	}

	body, err := c.poster.post(ctx, payload)
	if err != nil {
		if c.debug {
			c.flushTranscript(&tr)
		}
		return nil, err
	}

	if c.debug {
		tr.response(body)
		c.flushTranscript(&tr)
	}

	if notification {
		return json.RawMessage("true"), nil
	}

	resp, err := parseResponse(body)
	if err != nil {
		return nil, err
	}

	if !isEmptyValue(resp.ID) && !sameID(resp.ID, id) {
		return nil, &IDMismatchError{RequestID: id, ResponseID: string(resp.ID)}
	}

	if !isEmptyValue(resp.Error) {
		return nil, resp.remoteError()
	}

	if resp.Result == nil {
		return json.RawMessage(nullValue), nil
	}

	return resp.Result, nil
}

// Call invokes method and decodes the result into result, which may be nil
// to discard it. Decoded structs are validated with Val.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	raw, err := c.Invoke(ctx, method, params)
	if err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	return validateIfStruct(result)
}

func (c *Client) flushTranscript(tr *transcript) {
	s := tr.String()

	c.mu.Lock()
	c.transcript.WriteString(s)
	c.mu.Unlock()

	c.sink.Debug(s)
}
