package readinglists

import (
	"context"

	"github.com/inkread/inkread/internal/model"
)

// Library defines the interface for the reading list service.
type Library interface {
	List(ctx context.Context, opts ListOptions) model.ReadingListPage
	StarredBooks(ctx context.Context) []model.BookshelfItem
	Get(ctx context.Context, id int64) model.ReadingListDetail
	Create(ctx context.Context, name, description string) (*model.ReadingList, error)
	Delete(ctx context.Context, id int64) error
	AddBook(ctx context.Context, listID, bookID int64) error
	RemoveBook(ctx context.Context, listID, bookID int64) error
}
