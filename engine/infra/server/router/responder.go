package router

import (
	"net/http"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RespondOK writes the canonical success envelope.
func RespondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": message,
	})
}

// RespondWithError writes the canonical error envelope and aborts the
// request. Server-side detail is logged, not returned.
func RespondWithError(c *gin.Context, code, message string, err error) {
	status := StatusForCode(code)
	log := logger.FromContext(c.Request.Context())
	fields := []any{
		"status", status,
		"code", code,
		"path", c.Request.URL.Path,
	}
	if err != nil {
		fields = append(fields, "error", err)
	}
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", fields...)
	} else {
		log.Warn("Request rejected", fields...)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
