package chapters

import (
	"context"

	"github.com/inkread/inkread/internal/model"
)

// Reader defines the interface for the chapter service.
type Reader interface {
	List(ctx context.Context, bookID int64) ([]model.ChapterSummary, error)
	Get(ctx context.Context, chapterID int64) (*model.ChapterDetail, error)
}
