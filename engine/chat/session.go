package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aicopilotvisual/aicopilot-visual/engine/auth"
	"github.com/aicopilotvisual/aicopilot-visual/engine/auth/quota"
	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
)

// minPromptLength is the shortest input that gets a real analysis;
// anything shorter receives the guidance reply instead.
const minPromptLength = 5

// Analyzer is the slice of the analysis service the chat consumes.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (*workflow.Analysis, error)
}

// Session is one user's dashboard conversation. The identity and quota
// capabilities are injected so both can be faked in tests; the session
// itself holds only transient display state.
type Session struct {
	auth     auth.Session
	quota    *quota.Manager
	analyzer Analyzer

	mu       sync.Mutex
	messages []Message
}

// NewSession creates a chat session bound to the given identity.
func NewSession(authSession auth.Session, quotaManager *quota.Manager, analyzer Analyzer) *Session {
	return &Session{
		auth:     authSession,
		quota:    quotaManager,
		analyzer: analyzer,
	}
}

// SendResult is the outcome of one submission: the assistant reply and
// the new step list when an analysis ran.
type SendResult struct {
	Reply Message         `json:"reply"`
	Steps []workflow.Step `json:"steps,omitempty"`
}

// Send submits one user message. Policy checks (sign-in, quota) run
// before any network call; upstream failures surface as a recoverable
// assistant reply while the detail goes to the log.
func (s *Session) Send(ctx context.Context, input string) (*SendResult, error) {
	log := logger.FromContext(ctx)
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	userID, ok := s.auth.CurrentUserID()
	if !ok {
		return nil, ErrNotSignedIn
	}
	exceeded, err := s.quota.Exceeded(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("quota check failed: %w", err)
	}
	if exceeded {
		return nil, ErrMessageLimit
	}
	s.append(newMessage(RoleUser, input))
	if _, err := s.quota.Increment(ctx, userID); err != nil {
		return nil, fmt.Errorf("quota update failed: %w", err)
	}
	if len(trimmed) < minPromptLength {
		reply := newMessage(RoleAssistant, guidanceReply)
		s.append(reply)
		return &SendResult{Reply: reply}, nil
	}
	result, err := s.analyzer.Analyze(ctx, input)
	if err != nil {
		log.Error("Automation analysis failed", "user_id", userID, "error", err)
		reply := newMessage(RoleAssistant, analysisFailedReply)
		s.append(reply)
		return &SendResult{Reply: reply}, nil
	}
	reply := newMessage(RoleAssistant, formatAnalysisReply(result))
	s.append(reply)
	return &SendResult{Reply: reply, Steps: result.Steps}, nil
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// RemainingLabel is the quota line shown in the chat header.
func (s *Session) RemainingLabel(ctx context.Context) (string, error) {
	userID, ok := s.auth.CurrentUserID()
	if !ok {
		return "Sign in to send messages", nil
	}
	remaining, err := s.quota.Remaining(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("quota check failed: %w", err)
	}
	if remaining <= 0 {
		return "Message limit reached", nil
	}
	plural := "s"
	if remaining == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d message%s remaining", remaining, plural), nil
}

func (s *Session) append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}
