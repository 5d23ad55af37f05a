package model

// Ranking boards served by the backend.
const (
	RankingTypeDaily   = "daily"
	RankingTypeWeekly  = "weekly"
	RankingTypeMonthly = "monthly"

	RankingMetricViews = "views"
	RankingMetricLikes = "likes"
	RankingMetricGems  = "gems"
)

// RankingItem is one row of a ranking board. Rank is re-numbered client-side
// in array order, so it is always 1..N regardless of what the backend sent.
type RankingItem struct {
	Rank   int     `json:"rank"`
	BookID int64   `json:"book_id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Cover  string  `json:"cover"`
	Score  float64 `json:"score"`
}

// PeriodInfo describes which board a ranking result belongs to.
type PeriodInfo struct {
	Type   string `json:"type"`
	Metric string `json:"metric"`
}

// RankingResult is one slice of a ranking board plus its period metadata.
type RankingResult struct {
	Data       []RankingItem `json:"data"`
	PeriodInfo PeriodInfo    `json:"period_info"`
	Pagination Pagination    `json:"pagination"`
}

// EmptyRankingResult returns a structurally valid empty board for the given
// period, used as the fallback value.
func EmptyRankingResult(periodType, metric string, perPage int) RankingResult {
	return RankingResult{
		Data:       []RankingItem{},
		PeriodInfo: PeriodInfo{Type: periodType, Metric: metric},
		Pagination: FirstPage(perPage),
	}
}

// RankingOverview aggregates the boards fetched concurrently for the home
// screen. Individual board failures leave the slot empty, never abort the
// group.
type RankingOverview struct {
	Books      []RankingItem
	Hot        []RankingItem
	Authors    []RankingItem
	Characters []RankingItem
}
