package jsonrpc1

import "strings"

const (
	requestBegin  = "***** Request *****"
	requestEnd    = "***** End Of request *****"
	responseBegin = "***** Server response *****"
	responseEnd   = "***** End of server response *****"
)

// DebugSink receives the request/response transcript of each call made by
// a client with debug enabled.
type DebugSink interface {
	Debug(transcript string)
}

// DebugFunc adapts a function to DebugSink.
type DebugFunc func(transcript string)

func (f DebugFunc) Debug(transcript string) {
	f(transcript)
}

// LoggerSink writes transcripts to the package logger.
type LoggerSink struct{}

func (LoggerSink) Debug(transcript string) {
	logger.Info().Str("transcript", transcript).Msg("JSON-RPC exchange")
}

// transcript collects the debug output of a single call.
type transcript struct {
	b strings.Builder
}

func (t *transcript) request(payload []byte) {
	t.b.WriteString(requestBegin + "\n")
	t.b.Write(payload)
	t.b.WriteString("\n" + requestEnd + "\n\n")
}

// response records the body as received. Line endings, CRLF included,
// are not normalised.
func (t *transcript) response(body []byte) {
	t.b.WriteString(responseBegin + "\n")
	t.b.Write(body)
	if len(body) == 0 || body[len(body)-1] != '\n' {
		t.b.WriteByte('\n')
	}
	t.b.WriteString(responseEnd + "\n")
}

func (t *transcript) String() string {
	return t.b.String()
}
