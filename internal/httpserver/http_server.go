package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// HTTPServerer is the interface for the http server
type HTTPServerer interface {
	Serve(net.Listener) error
	Shutdown(context.Context) error
}

// HTTPServicer is the interface for the http service
type HTTPServicer interface {
	Serve() error
	Close() error
	Address() string
}

// HTTPService is the implementation of the http service
type HTTPService struct {
	httpServer   HTTPServerer
	httpListener net.Listener
}

var _ HTTPServicer = &HTTPService{}

// Serve starts the http server, blocking until it is closed
func (httpService *HTTPService) Serve() error {
	err := httpService.httpServer.Serve(httpService.httpListener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close shuts the http server down, waiting for in flight requests
func (httpService *HTTPService) Close() error {
	if httpService.httpServer == nil || httpService.httpListener == nil {
		if httpService.httpListener != nil {
			return httpService.httpListener.Close()
		}
		return &Error{Message: "HTTP server or listener is nil"}
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpService.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	// Shutdown only closes listeners the server is serving on
	if err := httpService.httpListener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// Address returns the address the listener is bound to
func (httpService *HTTPService) Address() string {
	if httpService.httpListener == nil {
		return ""
	}
	return httpService.httpListener.Addr().String()
}
