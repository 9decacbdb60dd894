package httpserver

import (
	"github.com/gin-gonic/gin"

	"calorie-counter-api/internal/log"
	"calorie-counter-api/internal/service"
)

// NewRouter creates the gin engine with every route registered
func NewRouter(userService service.UserServicer, logFactory log.LogFactoryer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), loggerMiddleware(logFactory))

	handler := NewUserHandler(userService)
	api := router.Group(BasePath)
	{
		api.GET("/health", Health)

		users := api.Group("/users")
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.GET("/:"+EmailPathParameter, handler.GetUser)
		users.PUT("/:"+EmailPathParameter, handler.UpdateUser)
		users.DELETE("/:"+EmailPathParameter, handler.DeleteUser)
	}
	return router
}
