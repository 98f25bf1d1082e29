package auth

import "context"

// Session is the capability surface the dashboard consumes to learn who
// is acting. Identity itself lives in an external service; this package
// only carries its answers.
type Session interface {
	CurrentUserID() (string, bool)
	IsSignedIn() bool
}

// StaticSession is a Session with a fixed identity. An empty user ID
// represents an anonymous visitor.
type StaticSession struct {
	userID string
}

func NewStaticSession(userID string) *StaticSession {
	return &StaticSession{userID: userID}
}

func (s *StaticSession) CurrentUserID() (string, bool) {
	return s.userID, s.userID != ""
}

func (s *StaticSession) IsSignedIn() bool {
	return s.userID != ""
}

type sessionCtxKey struct{}

// ContextWithSession returns a context carrying the request session.
func ContextWithSession(ctx context.Context, session Session) context.Context {
	if ctx == nil || session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFromContext returns the session stored in the context, or an
// anonymous session when none is present.
func SessionFromContext(ctx context.Context) Session {
	if ctx != nil {
		if session, ok := ctx.Value(sessionCtxKey{}).(Session); ok && session != nil {
			return session
		}
	}
	return NewStaticSession("")
}
