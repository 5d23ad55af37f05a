package books

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy. Fallback methods return a structurally valid
// empty result instead of an error; propagate methods re-raise.
var policies = map[string]rest.ErrorPolicy{
	"List":      rest.Fallback,
	"Get":       rest.Propagate,
	"FrontPage": rest.Fallback,
	"Search":    rest.Fallback,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// ListOptions filter and paginate catalog listings. Zero values mean "use
// the default": page 1, page size 10, no category filter.
type ListOptions struct {
	Page     int
	PageSize int
	Category string
}

// Service handles book catalog operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new book catalog service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// List returns one page of the catalog. Follows the fallback policy: on any
// failure it logs and returns an empty first page.
func (s *Service) List(ctx context.Context, opts ListOptions) model.BookPage {
	page := model.PageOrDefault(opts.Page)
	size := model.SizeOrDefault(opts.PageSize, model.DefaultPageSize)

	envelope, err := s.client.Get(ctx, "/books", rest.Params{
		"page":      page,
		"page_size": size,
		"category":  opts.Category,
	})
	if err != nil {
		s.fallback("List", err)
		return model.EmptyBookPage(size)
	}

	return s.decodePage(envelope, "List", page, size)
}

// Get fetches one book by id. Propagates errors.
func (s *Service) Get(ctx context.Context, id int64) (*model.Book, error) {
	envelope, err := s.client.Get(ctx, fmt.Sprintf("/books/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var book model.Book
	if err := envelope.Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

// FrontPage returns the curated front-page feed. Follows the fallback
// policy: an unavailable backend yields an empty feed, never an error.
func (s *Service) FrontPage(ctx context.Context) []model.Book {
	envelope, err := s.client.Get(ctx, "/books/front-page", nil)
	if err != nil {
		s.fallback("FrontPage", err)
		return []model.Book{}
	}

	var feed []model.Book
	if err := envelope.Decode(&feed); err != nil {
		s.fallback("FrontPage", err)
		return []model.Book{}
	}
	if feed == nil {
		feed = []model.Book{}
	}
	return feed
}

// Search returns one page of search results. An empty query is omitted from
// the request entirely. Follows the fallback policy.
func (s *Service) Search(ctx context.Context, query string, opts ListOptions) model.BookPage {
	page := model.PageOrDefault(opts.Page)
	size := model.SizeOrDefault(opts.PageSize, model.DefaultPageSize)

	envelope, err := s.client.Get(ctx, "/search", rest.Params{
		"q":         query,
		"page":      page,
		"page_size": size,
		"category":  opts.Category,
	})
	if err != nil {
		s.fallback("Search", err)
		return model.EmptyBookPage(size)
	}

	return s.decodePage(envelope, "Search", page, size)
}

func (s *Service) decodePage(envelope *rest.Envelope, op string, page, size int) model.BookPage {
	var items []model.Book
	if err := envelope.Decode(&items); err != nil {
		s.fallback(op, err)
		return model.EmptyBookPage(size)
	}
	if items == nil {
		items = []model.Book{}
	}

	pagination := model.Pagination{CurrentPage: page, PerPage: size}
	if envelope.Pagination != nil {
		pagination = *envelope.Pagination
	}

	return model.BookPage{Data: items, Pagination: pagination}
}

func (s *Service) fallback(op string, err error) {
	s.log.WithFields(logrus.Fields{
		"service": "books",
		"op":      op,
	}).WithError(err).Warn("returning empty result")
}
