package grpcserver

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"calorie-counter-api/internal/log"
)

func correlationIDFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if values := md.Get(log.CorrelationIDKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}

func loggerInterceptor(logFactory log.LogFactoryer) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		logger := logFactory.NewLoggerWithCorrelationID(correlationIDFromContext(ctx))
		logger.Debug(info.FullMethod)
		newCtx := log.AddLoggerToContext(ctx, logger)
		return handler(newCtx, req)
	}
}
