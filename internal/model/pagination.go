package model

// Default page sizes used when a caller does not override them. List and
// bookshelf views page by 20, everything else by 10.
const (
	DefaultPageSize     = 10
	DefaultListPageSize = 20
)

// Pagination describes the position of one slice inside a larger ordered
// collection. CurrentPage is 1-indexed.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PerPage     int `json:"per_page"`
}

// FirstPage returns empty first-page pagination metadata with the given page
// size. Fallback results use it so callers always receive a valid shape.
func FirstPage(perPage int) Pagination {
	return Pagination{
		CurrentPage: 1,
		TotalPages:  0,
		TotalItems:  0,
		PerPage:     perPage,
	}
}

// PageOrDefault substitutes page 1 for a missing or non-positive page number
func PageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// SizeOrDefault substitutes the given default for a missing or non-positive
// page size
func SizeOrDefault(size, def int) int {
	if size < 1 {
		return def
	}
	return size
}
