// Package grpcmw provides gRPC server interceptors that name the call's
// logging thread after the request identifier carried in the metadata.
package grpcmw

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
)

func actualOptions(opts ...Option) options {
	cfg := options{methodFallback: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.requestKey == "" {
		cfg.requestKey = constants.RequestMetadataKey
	}

	return cfg
}

func (o options) threadContext(ctx context.Context, fullMethod string) context.Context {
	name := ""

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(o.requestKey); len(values) > 0 {
			name = values[0]
		}
	}

	if name == "" && o.methodFallback {
		name = fullMethod
	}

	if name == "" {
		return ctx
	}

	return xcglogger.WithThreadName(ctx, o.prefix+name)
}

// UnaryServerInterceptor names the thread of each unary call.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := ""
		if info != nil {
			method = info.FullMethod
		}

		return handler(cfg.threadContext(ctx, method), req)
	}
}

// StreamServerInterceptor names the thread of each streaming call.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	cfg := actualOptions(opts...)

	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		method := ""
		if info != nil {
			method = info.FullMethod
		}

		return handler(srv, &threadStream{
			ServerStream: stream,
			ctx:          cfg.threadContext(stream.Context(), method),
		})
	}
}

type threadStream struct {
	grpc.ServerStream

	ctx context.Context
}

func (s *threadStream) Context() context.Context {
	return s.ctx
}
