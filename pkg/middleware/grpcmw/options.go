package grpcmw

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	requestKey     string
	prefix         string
	methodFallback bool
}

// WithRequestKey customizes the metadata key used to read the request identifier.
func WithRequestKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.requestKey = name
	}
}

// WithPrefix prepends prefix to the thread name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		o.prefix = prefix
	}
}

// WithMethodFallback controls whether the full method name labels calls
// without a request identifier. It is enabled by default.
func WithMethodFallback(enable bool) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		o.methodFallback = enable
	}
}
