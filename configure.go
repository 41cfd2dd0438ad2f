package jsonrpc1

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

var currentConf = packageConf{
	responseSize: 4 * 1024,
}

type Option func(*packageConf)

type packageConf struct {
	responseSize int
	logger       *zerolog.Logger
}

// WithResponseSize sets the initial capacity of response read buffers.
func WithResponseSize(size int) Option {
	return func(conf *packageConf) {
		conf.responseSize = size
	}
}

// WithLogger sets the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(conf *packageConf) {
		conf.logger = &l
	}
}

func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&currentConf)
	}
	if currentConf.responseSize <= 0 {
		currentConf.responseSize = 4 * 1024
	}
	if currentConf.logger != nil {
		logger = *currentConf.logger
	}
}
