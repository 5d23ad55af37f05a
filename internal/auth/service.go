package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy. Auth calls are primary actions; everything
// propagates. The controller, not the service, decides that a failed remote
// logout is non-fatal.
var policies = map[string]rest.ErrorPolicy{
	"Login":    rest.Propagate,
	"Register": rest.Propagate,
	"Logout":   rest.Propagate,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// LoginResult is the decoded login response: the opaque token and the nested
// user object with alias/default coalescing applied.
type LoginResult struct {
	Token string
	User  model.User
}

// Service handles auth endpoint operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new auth service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// Login exchanges credentials for a session token and identity.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &rest.ValidationError{Reason: "username must not be empty"}
	}
	if password == "" {
		return nil, &rest.ValidationError{Reason: "password must not be empty"}
	}

	envelope, err := s.client.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	if err := envelope.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, &rest.NetworkError{Err: errors.New("login response carried no token")}
	}

	return &LoginResult{Token: payload.Token, User: payload.User}, nil
}

// Register creates a new account. It does not log in; Controller.Register
// chains the two calls.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return &rest.ValidationError{Reason: "username must not be empty"}
	}
	if password == "" {
		return &rest.ValidationError{Reason: "password must not be empty"}
	}

	_, err := s.client.Post(ctx, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	return err
}

// Logout invalidates the session on the backend.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.client.Post(ctx, "/auth/logout", nil)
	return err
}
