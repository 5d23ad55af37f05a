package chapters

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy. Chapter data is critical to the reading action,
// so everything propagates.
var policies = map[string]rest.ErrorPolicy{
	"List": rest.Propagate,
	"Get":  rest.Propagate,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// Service handles chapter operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new chapter service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// List returns a book's table of contents. Only published chapters are
// requested; the status filter is supplied by default.
func (s *Service) List(ctx context.Context, bookID int64) ([]model.ChapterSummary, error) {
	envelope, err := s.client.Get(ctx, fmt.Sprintf("/chapters/book/%d", bookID), rest.Params{
		"status": model.ChapterStatusPublished,
	})
	if err != nil {
		return nil, err
	}

	var toc []model.ChapterSummary
	if err := envelope.Decode(&toc); err != nil {
		return nil, err
	}
	if toc == nil {
		toc = []model.ChapterSummary{}
	}
	return toc, nil
}

// Get fetches one chapter with its content.
func (s *Service) Get(ctx context.Context, chapterID int64) (*model.ChapterDetail, error) {
	envelope, err := s.client.Get(ctx, fmt.Sprintf("/chapters/%d", chapterID), nil)
	if err != nil {
		return nil, err
	}

	var chapter model.ChapterDetail
	if err := envelope.Decode(&chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}
