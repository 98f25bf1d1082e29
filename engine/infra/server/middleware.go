package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aicopilotvisual/aicopilot-visual/engine/auth"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/gin-gonic/gin"
)

// userIDHeader carries the identity asserted by the external identity
// provider sitting in front of this service.
const userIDHeader = "X-User-ID"

// LoggerMiddleware stores the server logger in the request context and
// logs request details on completion.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		c.Request = c.Request.WithContext(logger.ContextWithLogger(c.Request.Context(), log))
		c.Next()
		log.Info("Request completed",
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"status_code", c.Writer.Status(),
			"body_size", c.Writer.Size(),
			"path", path,
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}

// SessionMiddleware lifts the asserted user identity into the request
// context as an auth.Session. An absent header yields an anonymous
// session; handlers that need identity enforce sign-in themselves.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.NewStaticSession(c.GetHeader(userIDHeader))
		c.Request = c.Request.WithContext(auth.ContextWithSession(c.Request.Context(), session))
		c.Next()
	}
}

// BodySizeLimiter rejects request bodies above the configured limit.
func BodySizeLimiter(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// CORSMiddleware enables CORS support with configurable origins.
func CORSMiddleware(corsConfig config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := false
		for _, allowed := range corsConfig.AllowedOrigins {
			if allowed == "*" || allowed == origin {
				isAllowed = true
				break
			}
		}
		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, "+userIDHeader)
			if corsConfig.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			if corsConfig.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(corsConfig.MaxAge))
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
