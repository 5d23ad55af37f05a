package readinglists

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy.
var policies = map[string]rest.ErrorPolicy{
	"List":         rest.Fallback,
	"StarredBooks": rest.Fallback,
	"Get":          rest.Fallback,
	"Create":       rest.Propagate,
	"Delete":       rest.Propagate,
	"AddBook":      rest.Propagate,
	"RemoveBook":   rest.Propagate,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// ListOptions paginate the reading list view. Zero values mean "use the
// default": page 1, page size 20.
type ListOptions struct {
	Page     int
	PageSize int
}

// Service handles reading list operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new reading list service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// List returns one page of the user's reading lists. Follows the fallback
// policy.
func (s *Service) List(ctx context.Context, opts ListOptions) model.ReadingListPage {
	page := model.PageOrDefault(opts.Page)
	size := model.SizeOrDefault(opts.PageSize, model.DefaultListPageSize)

	envelope, err := s.client.Get(ctx, "/reading-lists", rest.Params{
		"page":      page,
		"page_size": size,
	})
	if err != nil {
		s.fallback("List", err)
		return model.EmptyReadingListPage(size)
	}

	var lists []model.ReadingList
	if err := envelope.Decode(&lists); err != nil {
		s.fallback("List", err)
		return model.EmptyReadingListPage(size)
	}
	if lists == nil {
		lists = []model.ReadingList{}
	}

	pagination := model.Pagination{CurrentPage: page, PerPage: size}
	if envelope.Pagination != nil {
		pagination = *envelope.Pagination
	}

	return model.ReadingListPage{Data: lists, Pagination: pagination}
}

// StarredBooks returns the user's starred-books shelf. Follows the fallback
// policy.
func (s *Service) StarredBooks(ctx context.Context) []model.BookshelfItem {
	envelope, err := s.client.Get(ctx, "/reading-lists/starred-books", nil)
	if err != nil {
		s.fallback("StarredBooks", err)
		return []model.BookshelfItem{}
	}

	var shelf []model.BookshelfItem
	if err := envelope.Decode(&shelf); err != nil {
		s.fallback("StarredBooks", err)
		return []model.BookshelfItem{}
	}
	if shelf == nil {
		shelf = []model.BookshelfItem{}
	}
	return shelf
}

// Get returns one reading list with its books. Follows the fallback policy:
// a failing backend yields an empty detail carrying only the requested id.
func (s *Service) Get(ctx context.Context, id int64) model.ReadingListDetail {
	empty := model.ReadingListDetail{
		ReadingList: model.ReadingList{ID: id},
		Books:       []model.BookshelfItem{},
	}

	envelope, err := s.client.Get(ctx, fmt.Sprintf("/reading-lists/%d", id), nil)
	if err != nil {
		s.fallback("Get", err)
		return empty
	}

	var detail model.ReadingListDetail
	if err := envelope.Decode(&detail); err != nil {
		s.fallback("Get", err)
		return empty
	}
	if detail.Books == nil {
		detail.Books = []model.BookshelfItem{}
	}
	return detail
}

// Create makes a new reading list. The name must contain at least one
// non-whitespace character; violations fail with ValidationError before any
// network call. Propagates errors.
func (s *Service) Create(ctx context.Context, name, description string) (*model.ReadingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &rest.ValidationError{Reason: "reading list name must not be empty"}
	}

	envelope, err := s.client.Post(ctx, "/reading-lists", map[string]string{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return nil, err
	}

	var list model.ReadingList
	if err := envelope.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes a reading list. Propagates errors.
func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/reading-lists/%d", id))
	return err
}

// AddBook adds a book to a reading list. Propagates errors.
func (s *Service) AddBook(ctx context.Context, listID, bookID int64) error {
	_, err := s.client.Post(ctx, fmt.Sprintf("/reading-lists/%d/books", listID), map[string]int64{
		"book_id": bookID,
	})
	return err
}

// RemoveBook removes a book from a reading list. Propagates errors.
func (s *Service) RemoveBook(ctx context.Context, listID, bookID int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/reading-lists/%d/books/%d", listID, bookID))
	return err
}

func (s *Service) fallback(op string, err error) {
	s.log.WithFields(logrus.Fields{
		"service": "reading-lists",
		"op":      op,
	}).WithError(err).Warn("returning empty result")
}
