package server

import (
	"errors"
	"fmt"

	"github.com/aicopilotvisual/aicopilot-visual/engine/auth"
	"github.com/aicopilotvisual/aicopilot-visual/engine/chat"
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/router"
	"github.com/gin-gonic/gin"
)

type chatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// chatMessageHandler routes one dashboard message through the user's
// chat session: sign-in gate, quota gate, then analysis.
func (s *Server) chatMessageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.SessionFromContext(c.Request.Context())
		userID, ok := session.CurrentUserID()
		if !ok {
			router.RespondWithError(c, router.ErrUnauthorizedCode,
				"Please sign in to send messages.", nil)
			return
		}
		var req chatMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			router.RespondWithError(c, router.ErrBadRequestCode, "Message is required", err)
			return
		}
		result, err := s.deps.Chat.ForUser(userID).Send(c.Request.Context(), req.Message)
		if err != nil {
			s.respondChatError(c, err)
			return
		}
		router.RespondOK(c, result, "Success")
	}
}

func (s *Server) respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrNotSignedIn):
		router.RespondWithError(c, router.ErrUnauthorizedCode,
			"Please sign in to send messages.", err)
	case errors.Is(err, chat.ErrMessageLimit):
		limit := s.deps.Config.Quota.FreeMessageLimit
		router.RespondWithError(c, router.ErrForbiddenCode,
			fmt.Sprintf("You've reached your limit of %d messages. Please upgrade for unlimited access.", limit),
			err)
	case errors.Is(err, chat.ErrEmptyInput):
		router.RespondWithError(c, router.ErrBadRequestCode, "Message is required", err)
	default:
		router.RespondWithError(c, router.ErrInternalCode,
			"Something went wrong. Please try again later.", err)
	}
}

// chatQuotaHandler reports how many free messages the caller has left.
func (s *Server) chatQuotaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.SessionFromContext(c.Request.Context())
		userID, ok := session.CurrentUserID()
		if !ok {
			router.RespondOK(c, gin.H{
				"signed_in": false,
				"label":     "Sign in to send messages",
			}, "Success")
			return
		}
		label, err := s.deps.Chat.ForUser(userID).RemainingLabel(c.Request.Context())
		if err != nil {
			router.RespondWithError(c, router.ErrInternalCode,
				"Something went wrong. Please try again later.", err)
			return
		}
		router.RespondOK(c, gin.H{
			"signed_in": true,
			"label":     label,
			"limit":     s.deps.Config.Quota.FreeMessageLimit,
		}, "Success")
	}
}
