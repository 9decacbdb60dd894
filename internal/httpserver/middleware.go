package httpserver

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calorie-counter-api/internal/log"
)

// loggerMiddleware tags the request with a correlation id and stores a logger carrying it in
// the request context
func loggerMiddleware(logFactory log.LogFactoryer) gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Header(CorrelationIDHeader, correlationID)

		logger := logFactory.NewLoggerWithCorrelationID(correlationID)
		c.Request = c.Request.WithContext(log.AddLoggerToContext(c.Request.Context(), logger))

		c.Next()

		logger.Debug(fmt.Sprintf("%s %s %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status()))
	}
}
