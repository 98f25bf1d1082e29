package server

import (
	"net/http"
	"time"

	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/router"
	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
	"github.com/gin-gonic/gin"
)

type exportRequest struct {
	Steps []workflow.RawStep `json:"steps"`
}

// bindExportSteps decodes and normalizes the posted step list. Steps
// arrive in the same loose shape the analyzer consumes, so missing
// fields pick up the same defaults before export.
func (s *Server) bindExportSteps(c *gin.Context) ([]workflow.Step, bool) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondWithError(c, router.ErrBadRequestCode, "Steps are required", err)
		return nil, false
	}
	if len(req.Steps) == 0 {
		router.RespondWithError(c, router.ErrBadRequestCode,
			"Create a workflow first before exporting.", nil)
		return nil, false
	}
	return workflow.NormalizeSteps(req.Steps), true
}

// exportJSONHandler returns the Make-compatible blueprint download.
func (s *Server) exportJSONHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		steps, ok := s.bindExportSteps(c)
		if !ok {
			return
		}
		c.Header("Content-Disposition", `attachment; filename="automation-workflow.json"`)
		c.JSON(http.StatusOK, workflow.MakeBlueprint(steps))
	}
}

// exportMarkdownHandler returns the human-readable workflow document.
func (s *Server) exportMarkdownHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		steps, ok := s.bindExportSteps(c)
		if !ok {
			return
		}
		doc := workflow.MarkdownDocument(steps, time.Now())
		c.Header("Content-Disposition", `attachment; filename="automation-workflow-documentation.md"`)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
	}
}
