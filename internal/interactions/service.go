package interactions

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy.
var policies = map[string]rest.ErrorPolicy{
	"Get":  rest.Fallback,
	"Like": rest.Propagate,
	"Star": rest.Propagate,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// Service handles book interaction operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new interaction service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// Get returns the current user's interaction state for a book. Follows the
// fallback policy: any failure yields the zero state.
func (s *Service) Get(ctx context.Context, bookID int64) model.InteractionState {
	envelope, err := s.client.Get(ctx, fmt.Sprintf("/interactions/user/book/%d", bookID), nil)
	if err != nil {
		s.fallback("Get", bookID, err)
		return model.InteractionState{BookID: bookID}
	}

	var state model.InteractionState
	if err := envelope.Decode(&state); err != nil {
		s.fallback("Get", bookID, err)
		return model.InteractionState{BookID: bookID}
	}
	state.BookID = bookID
	return state
}

// Like toggles the like on a book and returns the updated state. Propagates
// errors.
func (s *Service) Like(ctx context.Context, bookID int64) (model.InteractionState, error) {
	return s.toggle(ctx, bookID, "like")
}

// Star toggles the star on a book and returns the updated state. Propagates
// errors.
func (s *Service) Star(ctx context.Context, bookID int64) (model.InteractionState, error) {
	return s.toggle(ctx, bookID, "star")
}

func (s *Service) toggle(ctx context.Context, bookID int64, action string) (model.InteractionState, error) {
	envelope, err := s.client.Post(ctx, fmt.Sprintf("/interactions/book/%d/%s", bookID, action), nil)
	if err != nil {
		return model.InteractionState{BookID: bookID}, err
	}

	var state model.InteractionState
	if err := envelope.Decode(&state); err != nil {
		return model.InteractionState{BookID: bookID}, err
	}
	state.BookID = bookID
	return state, nil
}

func (s *Service) fallback(op string, bookID int64, err error) {
	s.log.WithFields(logrus.Fields{
		"service": "interactions",
		"op":      op,
		"book_id": bookID,
	}).WithError(err).Warn("returning zero interaction state")
}
