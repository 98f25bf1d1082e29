package chat

import (
	"sync"

	"github.com/aicopilotvisual/aicopilot-visual/engine/auth"
	"github.com/aicopilotvisual/aicopilot-visual/engine/auth/quota"
)

// Registry hands out one Session per user. Sessions are transient
// display state; nothing here survives a restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	quota    *quota.Manager
	analyzer Analyzer
}

// NewRegistry creates a session registry sharing one quota manager and
// analyzer across users.
func NewRegistry(quotaManager *quota.Manager, analyzer Analyzer) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		quota:    quotaManager,
		analyzer: analyzer,
	}
}

// ForUser returns the user's session, creating it on first use.
func (r *Registry) ForUser(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[userID]; ok {
		return session
	}
	session := NewSession(auth.NewStaticSession(userID), r.quota, r.analyzer)
	r.sessions[userID] = session
	return session
}
