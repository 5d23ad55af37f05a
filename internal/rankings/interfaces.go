package rankings

import (
	"context"

	"github.com/inkread/inkread/internal/model"
)

// Boards defines the interface for the ranking service.
type Boards interface {
	Books(ctx context.Context, opts Options) model.RankingResult
	Hot(ctx context.Context) []model.RankingItem
	Authors(ctx context.Context) []model.RankingItem
	Characters(ctx context.Context) []model.RankingItem
	Overview(ctx context.Context) model.RankingOverview
}
