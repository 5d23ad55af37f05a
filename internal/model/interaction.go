package model

// InteractionState mirrors the per-user interaction record for one book:
// whether the current user liked or starred it, plus the global counters.
type InteractionState struct {
	BookID  int64 `json:"-"`
	Liked   bool  `json:"liked"`
	Starred bool  `json:"starred"`
	Likes   int64 `json:"likes_count"`
	Stars   int64 `json:"stars_count"`
}
