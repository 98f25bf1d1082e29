package quota

import (
	"context"
	"fmt"
)

// Manager enforces the free-tier message quota: a persisted integer per
// user with increment and read operations. The check happens before any
// network call is issued.
type Manager struct {
	store Store
	limit int
}

// NewManager creates a quota manager over the given store. limit is the
// number of free messages a user may send.
func NewManager(store Store, limit int) *Manager {
	return &Manager{store: store, limit: limit}
}

// Limit returns the configured free message limit.
func (m *Manager) Limit() int {
	return m.limit
}

// Increment bumps the user's message count and returns the new value.
func (m *Manager) Increment(ctx context.Context, userID string) (int, error) {
	count, err := m.store.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read message count: %w", err)
	}
	count++
	if err := m.store.Set(ctx, userID, count); err != nil {
		return 0, fmt.Errorf("failed to store message count: %w", err)
	}
	return count, nil
}

// Remaining returns how many free messages the user has left, never
// below zero.
func (m *Manager) Remaining(ctx context.Context, userID string) (int, error) {
	count, err := m.store.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read message count: %w", err)
	}
	remaining := m.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Exceeded reports whether the user has used up the free tier.
func (m *Manager) Exceeded(ctx context.Context, userID string) (bool, error) {
	remaining, err := m.Remaining(ctx, userID)
	if err != nil {
		return false, err
	}
	return remaining <= 0, nil
}
