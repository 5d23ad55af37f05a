package interactions

import (
	"context"

	"github.com/inkread/inkread/internal/model"
)

// Interactor defines the interface for the interaction service.
type Interactor interface {
	Get(ctx context.Context, bookID int64) model.InteractionState
	Like(ctx context.Context, bookID int64) (model.InteractionState, error)
	Star(ctx context.Context, bookID int64) (model.InteractionState, error)
}
