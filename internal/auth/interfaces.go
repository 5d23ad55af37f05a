package auth

import "context"

// Authenticator defines the interface for the auth REST service.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
}

// SessionStore persists the opaque session token across restarts.
type SessionStore interface {
	Token() string
	HasToken() bool
	SetToken(token string)
	Clear()
}
