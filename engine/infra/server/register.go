package server

import (
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET(routes.Health(), s.healthHandler())
	r.POST(routes.Analyze(), s.analyzeHandler())
	r.POST(routes.ChatMessages(), s.chatMessageHandler())
	r.GET(routes.ChatQuota(), s.chatQuotaHandler())
	r.POST(routes.SpeechToText(), s.speechToTextHandler())
	r.POST(routes.Subscribe(), s.subscribeHandler())
	r.POST(routes.ExportJSON(), s.exportJSONHandler())
	r.POST(routes.ExportMarkdown(), s.exportMarkdownHandler())
}
