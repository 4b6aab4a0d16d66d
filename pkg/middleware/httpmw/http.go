// Package httpmw provides net/http middleware that names the request's
// logging thread, so every record logged with the request context carries
// the request id as its thread label.
package httpmw

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
)

const randomIDLength = 16

// Option configures the behaviour of the Middleware.
type Option func(*options)

type options struct {
	requestHeader  string
	prefix         string
	idGenerator    func() string
	generateIfMiss bool
	echoHeader     bool
}

// WithRequestHeader configures the header used to read the request id.
func WithRequestHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestHeader = name
		}
	}
}

// WithPrefix prepends prefix to the thread name, for example "http-".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithIDGenerator provides a custom generator used when the header is missing.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.idGenerator = fn
		}
	}
}

// WithGenerateMissingIDs instructs the middleware to create ids when the header is absent.
func WithGenerateMissingIDs(enable bool) Option {
	return func(o *options) {
		o.generateIfMiss = enable
	}
}

// WithEchoHeader copies the request id into the response headers.
func WithEchoHeader(enable bool) Option {
	return func(o *options) {
		o.echoHeader = enable
	}
}

// Middleware names the request context's thread after the request id.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := options{
		requestHeader:  constants.RequestHeader,
		idGenerator:    randomID,
		generateIfMiss: true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(cfg.requestHeader)
			if requestID == "" && cfg.generateIfMiss {
				requestID = cfg.idGenerator()
			}

			if requestID == "" {
				next.ServeHTTP(w, r)

				return
			}

			if cfg.echoHeader {
				w.Header().Set(cfg.requestHeader, requestID)
			}

			ctx := xcglogger.WithThreadName(r.Context(), cfg.prefix+requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func randomID() string {
	bytes := make([]byte, randomIDLength)

	_, err := rand.Read(bytes)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)
}
