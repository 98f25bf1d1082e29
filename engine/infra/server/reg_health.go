package server

import (
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/router"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/version"
	"github.com/gin-gonic/gin"
)

func (s *Server) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		router.RespondOK(c, gin.H{
			"status":      "healthy",
			"version":     version.Get().Version,
			"environment": s.deps.Config.Runtime.Environment,
		}, "Success")
	}
}
