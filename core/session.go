package core

import "context"

// Session is the verified identity of a caller.
type Session struct {
	UserID string
	Email  string
}

type TokenIssuer interface {
	Issue(user *User) (string, error)
}

type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}
