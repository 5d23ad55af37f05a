package model

// Chapter publication status filter values understood by the backend.
const (
	ChapterStatusDraft     = 0
	ChapterStatusPublished = 1
)

// ChapterSummary is one row of a book's table of contents.
type ChapterSummary struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	Title     string `json:"title"`
	Number    int    `json:"number"`
	WordCount int    `json:"word_count"`
	IsFree    bool   `json:"is_free"`
	UpdatedAt string `json:"updated_at"`
}

// ChapterDetail is a full chapter including its content, fetched for the
// reader screen. PrevID/NextID are zero when there is no neighbour.
type ChapterDetail struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	Title     string `json:"title"`
	Number    int    `json:"number"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
	PrevID    int64  `json:"prev_id"`
	NextID    int64  `json:"next_id"`
}
