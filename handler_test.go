package jsonrpc1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// testHandlerFunc implements a remote method for testHandler.
type testHandlerFunc func(params []json.RawMessage) (any, *rpcError)

// testRequest is what testHandler records for every POST it receives.
type testRequest struct {
	ContentType string
	Body        []byte
}

// testHandler is a minimal JSON-RPC 1.0 server used to exercise Client.
type testHandler struct {
	funcs map[string]testHandlerFunc

	mu       sync.Mutex
	requests []testRequest
}

func newTestServer(t *testing.T, funcs map[string]testHandlerFunc) (*httptest.Server, *testHandler) {
	t.Helper()

	h := &testHandler{funcs: funcs}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv, h
}

// newRawServer answers every request with the given status and body.
func newRawServer(t *testing.T, status int, body string) (*httptest.Server, *testHandler) {
	t.Helper()

	h := &testHandler{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.record(r)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, h
}

func (h *testHandler) record(r *http.Request) []byte {
	b, _ := io.ReadAll(r.Body)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.requests = append(h.requests, testRequest{
		ContentType: r.Header.Get("Content-Type"),
		Body:        b,
	})

	return b
}

func (h *testHandler) recorded() []testRequest {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]testRequest(nil), h.requests...)
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b := h.record(r)

	var req struct {
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
		ID     json.RawMessage   `json:"id"`
	}
	if err := json.Unmarshal(b, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := struct {
		ID     json.RawMessage `json:"id"`
		Result any             `json:"result"`
		Error  *rpcError       `json:"error"`
	}{ID: req.ID}

	handler, ok := h.funcs[req.Method]
	if !ok {
		resp.Error = &rpcError{Code: -32601, Message: "Method not found"}
	} else {
		resp.Result, resp.Error = handler(req.Params)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
