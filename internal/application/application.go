package application

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"calorie-counter-api/internal/config"
	"calorie-counter-api/internal/grpcserver"
	"calorie-counter-api/internal/httpserver"
	"calorie-counter-api/internal/log"
	"calorie-counter-api/internal/service"
)

// Applicationer provides the main functions to start the application
type Applicationer interface {
	StartServer()
	Close()
	GetHTTPServerAddress() string
	GetGRPCServerAddress() string
}

// Application is the main application
type Application struct {
	httpService httpserver.HTTPServicer
	grpcService grpcserver.GRPCServicer
	service     service.Managerer
	logger      log.Loggerer
	closeOnce   sync.Once
	closed      chan struct{}
}

// NewApplication creates a new application, nil when any of its parts cannot be created
func NewApplication(appConfig *config.Config) Applicationer {
	logFactory := log.NewLogFactory(appConfig.Environment, appConfig.Verbose)
	logger := logFactory.NewLogger()
	if appConfig.Environment != config.LocalEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceManager, err := (&service.Factory{}).CreateServiceManager(appConfig)
	if err != nil {
		logger.Error(err, "Failed to create service manager")
		return nil
	}

	grpcService, err := (&grpcserver.Factory{}).Create(
		fmt.Sprintf("%s:%s", appConfig.GRPC.Host, appConfig.GRPC.Port),
		logFactory,
	)
	if err != nil {
		logger.Error(err, "Failed to create GRPC Service Server")
		if closeErr := serviceManager.Close(); closeErr != nil {
			logger.Error(closeErr, "Failed to close service")
		}
		return nil
	}

	httpService, err := (&httpserver.Factory{}).Create(
		fmt.Sprintf("%s:%s", appConfig.HTTP.Host, appConfig.HTTP.Port),
		serviceManager.GetUserService(),
		logFactory,
	)
	if err != nil {
		logger.Error(err, "Failed to create HTTP Service Server")
		if closeErr := grpcService.Close(); closeErr != nil {
			logger.Error(closeErr, "Failed to close grpc server")
		}
		if closeErr := serviceManager.Close(); closeErr != nil {
			logger.Error(closeErr, "Failed to close service")
		}
		return nil
	}

	return New(httpService, grpcService, serviceManager, logger)
}

// New creates a new application with raw parameters
func New(
	httpService httpserver.HTTPServicer,
	grpcService grpcserver.GRPCServicer,
	service service.Managerer,
	logger log.Loggerer,
) Applicationer {
	return &Application{
		httpService: httpService,
		grpcService: grpcService,
		service:     service,
		logger:      logger,
		closed:      make(chan struct{}),
	}
}

// StartServer serves gRPC in the background and HTTP in the foreground. Once the HTTP server is
// shut down it returns only after Close has finished releasing every resource.
func (application *Application) StartServer() {
	go func() {
		application.logger.Info(fmt.Sprintf("Starting gRPC server on %s...", application.grpcService.Address()))
		if err := application.grpcService.Serve(); err != nil {
			application.logger.Error(err, "Failed to serve grpc server")
		}
	}()

	application.logger.Info(fmt.Sprintf("Starting HTTP server on %s...", application.httpService.Address()))
	if err := application.httpService.Serve(); err != nil {
		application.logger.Error(err, "Failed to serve http server")
		return
	}
	<-application.closed
}

// Close closes the servers and the services used by the application
func (application *Application) Close() {
	defer application.closeOnce.Do(func() { close(application.closed) })
	switch {
	case application.service == nil:
		application.logger.Error(nil, "Service is not created")
		return
	case application.httpService == nil:
		application.logger.Error(nil, "HTTP server is not created")
		return
	case application.grpcService == nil:
		application.logger.Error(nil, "gRPC server is not created")
		return
	}
	if err := application.httpService.Close(); err != nil {
		application.logger.Error(err, "Failed to close http server")
	}
	if err := application.grpcService.Close(); err != nil {
		application.logger.Error(err, "Failed to close grpc server")
	}
	if err := application.service.Close(); err != nil {
		application.logger.Error(err, "Failed to close service")
	}
	application.logger.Info("Application closed")
}

// GetHTTPServerAddress returns the address the HTTP server listens on
func (application *Application) GetHTTPServerAddress() string {
	return application.httpService.Address()
}

// GetGRPCServerAddress returns the address the gRPC server listens on
func (application *Application) GetGRPCServerAddress() string {
	return application.grpcService.Address()
}
