package server

import (
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/router"
	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// analyzeHandler runs one automation analysis and returns the
// normalized step breakdown. Upstream failures come back as a generic
// retry-prompting message; the detail stays in the log.
func (s *Server) analyzeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			router.RespondWithError(c, router.ErrBadRequestCode, "Prompt is required", err)
			return
		}
		result, err := s.deps.Analysis.Analyze(c.Request.Context(), req.Prompt)
		if err != nil {
			// Empty, malformed and transport failures all read the same
			// to the user; they differ only in the logged detail.
			router.RespondWithError(c, router.ErrUpstreamFailedCode,
				"Failed to analyze automation request. Please try again.", err)
			return
		}
		router.RespondOK(c, result, "Success")
	}
}
