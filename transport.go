package jsonrpc1

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// messagePoster sends JSON-RPC payloads to a single HTTP endpoint.
type messagePoster struct {
	url    string
	client *http.Client
}

// newMessagePoster creates a new message poster
func newMessagePoster(url string, client *http.Client) *messagePoster {
	return &messagePoster{
		url:    url,
		client: client,
	}
}

// post sends the payload and returns the whole response body. Every
// failure to obtain a successful response is reported as *TransportError.
func (p *messagePoster) post(ctx context.Context, payload []byte) ([]byte, error) {
	body, err := p.do(ctx, payload)
	if err != nil {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		logger.Debug().Err(err).Str("url", p.url).Msg("JSON-RPC transport failure")
		return nil, &TransportError{URL: p.url}
	}

	return body, nil
}

func (p *messagePoster) do(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf := bytes.NewBuffer(make([]byte, 0, currentConf.responseSize))
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	return buf.Bytes(), nil
}
