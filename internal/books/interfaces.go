package books

import (
	"context"

	"github.com/inkread/inkread/internal/model"
)

// Catalog defines the interface for the book catalog service.
type Catalog interface {
	List(ctx context.Context, opts ListOptions) model.BookPage
	Get(ctx context.Context, id int64) (*model.Book, error)
	FrontPage(ctx context.Context) []model.Book
	Search(ctx context.Context, query string, opts ListOptions) model.BookPage
}
