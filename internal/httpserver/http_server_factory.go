package httpserver

import (
	"net"
	"net/http"
	"time"

	"calorie-counter-api/internal/log"
	"calorie-counter-api/internal/service"
)

const readHeaderTimeout = 10 * time.Second

// Factoryer is the interface for creating an HTTP server
type Factoryer interface {
	Create(
		httpServerAddress string,
		userService service.UserServicer,
		logFactory log.LogFactoryer,
	) (HTTPServicer, error)
}

// Factory is the implementation of the HTTP server factory
type Factory struct{}

var _ Factoryer = &Factory{}

// Create creates an HTTP server with the user routes and binds its listener
func (httpServerFactory *Factory) Create(
	httpServerAddress string,
	userService service.UserServicer,
	logFactory log.LogFactoryer,
) (HTTPServicer, error) {
	if userService == nil || logFactory == nil {
		return nil, &Error{Message: "User service and log factory are required"}
	}
	httpServer := &http.Server{
		Handler:           NewRouter(userService, logFactory),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	// The listener is bound now so the address is known before serving
	httpListener, err := net.Listen("tcp", httpServerAddress)
	if err != nil {
		return nil, err
	}
	return &HTTPService{
		httpServer:   httpServer,
		httpListener: httpListener,
	}, nil
}
