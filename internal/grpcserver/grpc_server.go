package grpcserver

import (
	"errors"
	"net"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCServerer is the interface for the grpc server
type GRPCServerer interface {
	Serve(net.Listener) error
	Stop()
}

// HealthServerer is the part of the health server the service drives
type HealthServerer interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
	Shutdown()
}

// GRPCServicer is the interface for the grpc service
type GRPCServicer interface {
	Serve() error
	Close() error
	Address() string
}

// GRPCService is the implementation of the grpc service
type GRPCService struct {
	grpcServer   GRPCServerer
	grpcListener net.Listener
	healthServer HealthServerer
}

var _ GRPCServicer = &GRPCService{}

// Serve starts the grpc server
func (grpcService *GRPCService) Serve() error {
	return grpcService.grpcServer.Serve(grpcService.grpcListener)
}

// Close reports every service as not serving and closes the grpc server
func (grpcService *GRPCService) Close() error {
	if grpcService.grpcServer == nil || grpcService.grpcListener == nil {
		if grpcService.grpcListener != nil {
			return grpcService.grpcListener.Close()
		}
		return &Error{Message: "GRPC server or listener is nil"}
	}
	if grpcService.healthServer != nil {
		grpcService.healthServer.Shutdown()
	}
	grpcService.grpcServer.Stop()
	if err := grpcService.grpcListener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// Address returns the address the listener is bound to
func (grpcService *GRPCService) Address() string {
	if grpcService.grpcListener == nil {
		return ""
	}
	return grpcService.grpcListener.Addr().String()
}
