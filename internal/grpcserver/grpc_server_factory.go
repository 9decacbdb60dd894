package grpcserver

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"calorie-counter-api/internal/log"
)

// Factoryer is the interfact for creating a gRPC server
type Factoryer interface {
	Create(grpcServerAddress string, logFactory log.LogFactoryer) (GRPCServicer, error)
}

// Factory is the implementation of the gRPC server factory
type Factory struct{}

var _ Factoryer = &Factory{}

// Create creates a gRPC server exposing the health service
func (grpcServerFactory *Factory) Create(
	grpcServerAddress string,
	logFactory log.LogFactoryer,
) (GRPCServicer, error) {
	if logFactory == nil {
		return nil, &Error{Message: "Log factory is required"}
	}
	healthServer := health.NewServer()
	healthServer.SetServingStatus(UserServiceName, healthpb.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(loggerInterceptor(logFactory)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	// Create a listener for the gRPC server which eventually will start accepting connections when server is served
	grpcListener, err := net.Listen("tcp", grpcServerAddress)
	if err != nil {
		return nil, err
	}
	return &GRPCService{
		grpcServer:   grpcServer,
		grpcListener: grpcListener,
		healthServer: healthServer,
	}, nil
}
