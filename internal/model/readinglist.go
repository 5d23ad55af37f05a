package model

import "encoding/json"

// Alias tables for bookshelf items. The author may arrive as a flat string
// or a nested object; reading progress moves between keys across backend
// versions.
var (
	bookshelfAuthorAlias = StringAlias{
		Keys:    []string{"author", "author_name", "writer"},
		Default: UnknownAuthor,
	}
	bookshelfProgressAlias = NumberAlias{
		Keys:    []string{"progress", "reading_progress", "read_percent"},
		Default: 0,
	}
)

// ReadingList is one user-curated list of books.
type ReadingList struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BookCount   int    `json:"book_count"`
	IsStarred   bool   `json:"is_starred"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ReadingListDetail is a reading list together with its books.
type ReadingListDetail struct {
	ReadingList
	Books []BookshelfItem `json:"books"`
}

// BookshelfItem is one book entry inside a reading list or bookshelf view,
// normalized from heterogeneous backend shapes.
type BookshelfItem struct {
	BookID   int64   `json:"book_id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Cover    string  `json:"cover"`
	Progress float64 `json:"progress"`
	AddedAt  string  `json:"added_at"`
}

// UnmarshalJSON decodes a bookshelf item, coalescing the author and progress
// aliases.
func (bi *BookshelfItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["book_id"]; ok {
		_ = json.Unmarshal(v, &bi.BookID)
	} else if v, ok := raw["id"]; ok {
		_ = json.Unmarshal(v, &bi.BookID)
	}
	if v, ok := raw["title"]; ok {
		_ = json.Unmarshal(v, &bi.Title)
	}
	if v, ok := raw["cover"]; ok {
		_ = json.Unmarshal(v, &bi.Cover)
	}
	if v, ok := raw["added_at"]; ok {
		_ = json.Unmarshal(v, &bi.AddedAt)
	}
	bi.Author = bookshelfAuthorAlias.Resolve(raw)
	bi.Progress = bookshelfProgressAlias.Resolve(raw)
	return nil
}

// ReadingListPage is one slice of the user's reading lists.
type ReadingListPage struct {
	Data       []ReadingList `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// EmptyReadingListPage returns a structurally valid empty first page.
func EmptyReadingListPage(perPage int) ReadingListPage {
	return ReadingListPage{
		Data:       []ReadingList{},
		Pagination: FirstPage(perPage),
	}
}
