package httpapi

import (
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// recovery turns a handler panic into a SERVER_ERROR response
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", "route", c.FullPath(), "error", err, "stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:    CodeServerError,
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// originGuard rejects browser requests sent from a page not served on the
// loopback interface. Requests without an Origin header pass.
func originGuard(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || isLoopbackOrigin(origin) {
			c.Next()
			return
		}
		logger.Warn("rejected cross-origin request", "origin", origin, "route", c.FullPath())
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Code:    CodeForbidden,
			Message: "cross-origin request rejected",
		})
	}
}

func isLoopbackOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
