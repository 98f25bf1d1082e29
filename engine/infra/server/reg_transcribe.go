package server

import (
	"net/http"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/gin-gonic/gin"
)

// speechToTextHandler proxies one uploaded audio file to the
// transcription provider. The wire shape is fixed: {"text": ...} on
// success, {"error": ...} otherwise.
func (s *Server) speechToTextHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
			return
		}
		defer file.Close()
		text, err := s.deps.Transcribe.Transcribe(c.Request.Context(), header.Filename, file)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("Error transcribing audio", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}
