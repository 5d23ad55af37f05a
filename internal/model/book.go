package model

import "encoding/json"

// UnknownAuthor is substituted when no author alias matches.
const UnknownAuthor = "Unknown Author"

// Alias table for book records: the author may arrive as a flat string, a
// nested object, or under a legacy key.
var bookAuthorAlias = StringAlias{
	Keys:    []string{"author", "author_name", "writer"},
	Default: UnknownAuthor,
}

// Book describes one book resource as listed or fetched by id. Optional
// fields are zero-valued when the backend omits them.
type Book struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Cover        string   `json:"cover"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
	WordCount    int64    `json:"word_count"`
	ChapterCount int      `json:"chapter_count"`
	Views        int64    `json:"views"`
	Likes        int64    `json:"likes"`
	UpdatedAt    string   `json:"updated_at"`
}

// UnmarshalJSON decodes a book record, coalescing the author aliases. The
// author key is shadowed during the plain decode because it may arrive as a
// flat string or a nested object.
func (b *Book) UnmarshalJSON(data []byte) error {
	type plain Book
	aux := struct {
		*plain
		Author json.RawMessage `json:"author"`
	}{plain: (*plain)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Author = bookAuthorAlias.Resolve(raw)
	return nil
}

// BookPage is one slice of a paginated book listing.
type BookPage struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// EmptyBookPage returns a structurally valid empty first page, used as the
// fallback value for listing reads.
func EmptyBookPage(perPage int) BookPage {
	return BookPage{
		Data:       []Book{},
		Pagination: FirstPage(perPage),
	}
}
