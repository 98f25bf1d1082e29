package server

import (
	"errors"
	"net/http"

	"github.com/aicopilotvisual/aicopilot-visual/engine/newsletter"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// subscribeHandler validates the address locally, then forwards it to
// the mailing-list provider. The wire shape is fixed: {"message": ...}
// with 200/400/500 statuses.
func (s *Server) subscribeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}
		if err := newsletter.ValidateEmail(req.Email); err != nil {
			message := "Invalid email format"
			if errors.Is(err, newsletter.ErrEmailRequired) {
				message = "Email is required"
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": message})
			return
		}
		if err := s.deps.Newsletter.Subscribe(c.Request.Context(), req.Email); err != nil {
			s.respondSubscribeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed"})
	}
}

func (s *Server) respondSubscribeError(c *gin.Context, err error) {
	if errors.Is(err, newsletter.ErrMemberExists) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You're already subscribed to our newsletter!"})
		return
	}
	var provErr *newsletter.ProviderError
	if errors.As(err, &provErr) {
		message := provErr.Title
		if message == "" {
			message = "Error subscribing to newsletter"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}
	logger.FromContext(c.Request.Context()).Error("Newsletter subscription error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong. Please try again later."})
}
