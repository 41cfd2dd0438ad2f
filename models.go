package jsonrpc1

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// rpcRequest represents a JSON-RPC 1.0 request object. A nil ID is encoded
// as null, which marks the request as a notification.
type rpcRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	ID     *int64          `json:"id"`
}

// rpcResponse represents a JSON-RPC 1.0 response object. Fields are kept
// raw so that absent, null and zero values can be told apart.
type rpcResponse struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// rpcError represents a JSON-RPC 1.0 error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (err *rpcError) asError() error {
	message := "Request error"
	if err.Message != "" {
		message += ": " + err.Message
	}
	return &Error{Code: err.Code, Message: message}
}

var nullValue = []byte("null")

// isEmptyValue reports whether a raw JSON value counts as empty: absent,
// null, false, zero, an empty or "0" string, an empty object or array.
func isEmptyValue(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullValue) {
		return true
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch v := v.(type) {
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == "" || v == "0"
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}

	return false
}

// sameID compares a response id with the request id. Numbers and numeric
// strings are compared by value.
func sameID(raw json.RawMessage, id int64) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch v := v.(type) {
	case float64:
		return v == float64(id)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return err == nil && n == float64(id)
	case bool:
		return v == (id != 0)
	}

	return false
}

// parseResponse decodes a response body into an envelope. Anything other
// than a JSON object is rejected. Members are looked up by their exact
// lower-case names.
func parseResponse(body []byte) (rpcResponse, error) {
	var resp rpcResponse

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return resp, ErrMalformedResponse
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return resp, ErrMalformedResponse
	}

	resp.ID = members["id"]
	resp.Result = members["result"]
	resp.Error = members["error"]

	return resp, nil
}

// remoteError converts a non-empty error member into an *Error. A member
// that is not an object, e.g. a bare string, has neither code nor message.
func (r *rpcResponse) remoteError() error {
	var rpcErr rpcError

	var members map[string]json.RawMessage
	if err := json.Unmarshal(r.Error, &members); err == nil {
		rpcErr.Code = errorCode(members["code"])
		rpcErr.Message = errorMessage(members["message"])
	}

	return rpcErr.asError()
}

// errorCode reads an error code, truncating fractional numbers and
// accepting numeric strings. Anything else is 0.
func errorCode(raw json.RawMessage) int {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	switch v := v.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(n)
		}
	case bool:
		if v {
			return 1
		}
	}

	return 0
}

// errorMessage reads an error message. Non-string values are kept as
// their JSON text; empty values yield "".
func errorMessage(raw json.RawMessage) string {
	if isEmptyValue(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(bytes.TrimSpace(raw))
}
