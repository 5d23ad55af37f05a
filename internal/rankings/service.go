package rankings

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rest"
)

// Per-method error policy. Every board is supplementary display data.
var policies = map[string]rest.ErrorPolicy{
	"Books":      rest.Fallback,
	"Hot":        rest.Fallback,
	"Authors":    rest.Fallback,
	"Characters": rest.Fallback,
	"Overview":   rest.Fallback,
}

// PolicyFor returns the declared error policy for a service method.
func PolicyFor(op string) rest.ErrorPolicy {
	return policies[op]
}

// Options select a ranking board slice. Zero values mean "use the default":
// weekly by views, page 1, page size 10.
type Options struct {
	Type     string
	Metric   string
	Page     int
	PageSize int
}

func (o Options) withDefaults() Options {
	if o.Type == "" {
		o.Type = model.RankingTypeWeekly
	}
	if o.Metric == "" {
		o.Metric = model.RankingMetricViews
	}
	o.Page = model.PageOrDefault(o.Page)
	o.PageSize = model.SizeOrDefault(o.PageSize, model.DefaultPageSize)
	return o
}

// Service handles ranking board operations
type Service struct {
	client *rest.Client
	log    *logrus.Logger
}

// NewService creates a new ranking service
func NewService(client *rest.Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// Books returns one slice of the book ranking board. Rank fields are
// re-numbered 1..N in array order, and the period info always echoes the
// requested board even when the backend omits it. Follows the fallback
// policy.
func (s *Service) Books(ctx context.Context, opts Options) model.RankingResult {
	opts = opts.withDefaults()

	envelope, err := s.client.Get(ctx, "/rankings/books", rest.Params{
		"type":      opts.Type,
		"metric":    opts.Metric,
		"page":      opts.Page,
		"page_size": opts.PageSize,
	})
	if err != nil {
		s.fallback("Books", err)
		return model.EmptyRankingResult(opts.Type, opts.Metric, opts.PageSize)
	}

	// The board arrives either as {items, period_info} or as a bare array on
	// older backend versions.
	var payload struct {
		Items      []model.RankingItem `json:"items"`
		PeriodInfo model.PeriodInfo    `json:"period_info"`
	}
	if err := envelope.Decode(&payload); err != nil {
		if err := envelope.Decode(&payload.Items); err != nil {
			s.fallback("Books", err)
			return model.EmptyRankingResult(opts.Type, opts.Metric, opts.PageSize)
		}
	}

	items := renumber(payload.Items)

	period := payload.PeriodInfo
	if period.Type == "" {
		period.Type = opts.Type
	}
	if period.Metric == "" {
		period.Metric = opts.Metric
	}

	pagination := model.Pagination{CurrentPage: opts.Page, PerPage: opts.PageSize}
	if envelope.Pagination != nil {
		pagination = *envelope.Pagination
	}

	return model.RankingResult{Data: items, PeriodInfo: period, Pagination: pagination}
}

// Hot returns the trending board. Follows the fallback policy.
func (s *Service) Hot(ctx context.Context) []model.RankingItem {
	return s.board(ctx, "Hot", "/rankings/hot")
}

// Authors returns the author board. Follows the fallback policy.
func (s *Service) Authors(ctx context.Context) []model.RankingItem {
	return s.board(ctx, "Authors", "/rankings/authors")
}

// Characters returns the character board. Follows the fallback policy.
func (s *Service) Characters(ctx context.Context) []model.RankingItem {
	return s.board(ctx, "Characters", "/rankings/characters")
}

// Overview fetches the four boards concurrently and returns once all have
// settled. Each board carries its own fallback, so a failing board leaves
// its slot empty without aborting the group.
func (s *Service) Overview(ctx context.Context) model.RankingOverview {
	var overview model.RankingOverview

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		result := s.Books(ctx, Options{})
		overview.Books = result.Data
	}()
	go func() {
		defer wg.Done()
		overview.Hot = s.Hot(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.Authors = s.Authors(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.Characters = s.Characters(ctx)
	}()
	wg.Wait()

	return overview
}

func (s *Service) board(ctx context.Context, op, path string) []model.RankingItem {
	envelope, err := s.client.Get(ctx, path, nil)
	if err != nil {
		s.fallback(op, err)
		return []model.RankingItem{}
	}

	var items []model.RankingItem
	if err := envelope.Decode(&items); err != nil {
		s.fallback(op, err)
		return []model.RankingItem{}
	}
	return renumber(items)
}

// renumber assigns ranks 1..N in array order, overriding whatever the
// backend sent.
func renumber(items []model.RankingItem) []model.RankingItem {
	if items == nil {
		return []model.RankingItem{}
	}
	for i := range items {
		items[i].Rank = i + 1
	}
	return items
}

func (s *Service) fallback(op string, err error) {
	s.log.WithFields(logrus.Fields{
		"service": "rankings",
		"op":      op,
	}).WithError(err).Warn("returning empty board")
}
