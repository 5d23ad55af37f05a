package model

import (
	"encoding/json"
	"testing"
)

func rawRecord(t *testing.T, src string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		t.Fatalf("Failed to parse test record: %v", err)
	}
	return raw
}

func TestStringAliasResolve(t *testing.T) {
	alias := StringAlias{
		Keys:    []string{"author", "author_name", "writer"},
		Default: UnknownAuthor,
	}

	tests := []struct {
		name   string
		record string
		want   string
	}{
		{"flat string on first key", `{"author":"Jin Yong"}`, "Jin Yong"},
		{"nested object name", `{"author":{"name":"Jin Yong","id":7}}`, "Jin Yong"},
		{"nested object username", `{"author":{"username":"jy01"}}`, "jy01"},
		{"second alias wins when first missing", `{"author_name":"Gu Long"}`, "Gu Long"},
		{"first match wins over later aliases", `{"author":"A","writer":"B"}`, "A"},
		{"empty string falls through to next alias", `{"author":"","writer":"B"}`, "B"},
		{"null falls through", `{"author":null,"author_name":"C"}`, "C"},
		{"no alias present yields default", `{"title":"x"}`, UnknownAuthor},
		{"empty object yields default", `{"author":{}}`, UnknownAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alias.Resolve(rawRecord(t, tt.record))
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumberAliasResolve(t *testing.T) {
	alias := NumberAlias{
		Keys:    []string{"progress", "reading_progress", "read_percent"},
		Default: 0,
	}

	tests := []struct {
		name   string
		record string
		want   float64
	}{
		{"first key", `{"progress":0.42}`, 0.42},
		{"second key", `{"reading_progress":17}`, 17},
		{"third key", `{"read_percent":99.5}`, 99.5},
		{"string value is not a match", `{"progress":"42","read_percent":3}`, 3},
		{"missing yields default", `{"title":"x"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alias.Resolve(rawRecord(t, tt.record))
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBookUnmarshalAuthorShapes(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantAuthor string
		wantTitle  string
	}{
		{"flat author", `{"id":1,"title":"Demi-Gods","author":"Jin Yong"}`, "Jin Yong", "Demi-Gods"},
		{"nested author", `{"id":2,"title":"Sword Rain","author":{"name":"Gu Long"}}`, "Gu Long", "Sword Rain"},
		{"legacy writer key", `{"id":3,"title":"Untitled","writer":"Anon"}`, "Anon", "Untitled"},
		{"missing author", `{"id":4,"title":"Orphan"}`, UnknownAuthor, "Orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Book
			if err := json.Unmarshal([]byte(tt.payload), &b); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if b.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", b.Author, tt.wantAuthor)
			}
			if b.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", b.Title, tt.wantTitle)
			}
		})
	}
}

func TestBookshelfItemUnmarshal(t *testing.T) {
	payload := `{
		"id": 12,
		"title": "Demi-Gods",
		"author": {"name": "Jin Yong"},
		"reading_progress": 0.37,
		"added_at": "2025-11-02T10:00:00Z"
	}`

	var item BookshelfItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if item.BookID != 12 {
		t.Errorf("BookID = %d, want 12", item.BookID)
	}
	if item.Author != "Jin Yong" {
		t.Errorf("Author = %q, want %q", item.Author, "Jin Yong")
	}
	if item.Progress != 0.37 {
		t.Errorf("Progress = %v, want 0.37", item.Progress)
	}
	if item.AddedAt != "2025-11-02T10:00:00Z" {
		t.Errorf("AddedAt = %q, want RFC3339 timestamp", item.AddedAt)
	}
}

func TestBookshelfItemDefaults(t *testing.T) {
	var item BookshelfItem
	if err := json.Unmarshal([]byte(`{"book_id":5,"title":"Bare"}`), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if item.Author != UnknownAuthor {
		t.Errorf("Author = %q, want %q", item.Author, UnknownAuthor)
	}
	if item.Progress != 0 {
		t.Errorf("Progress = %v, want 0", item.Progress)
	}
}

func TestUserUnmarshalCoalescing(t *testing.T) {
	payload := `{"id":9,"username":"mo_yan","role":"author","avatar_url":"https://cdn/x.png"}`

	var u User
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if u.ID != 9 {
		t.Errorf("ID = %d, want 9", u.ID)
	}
	if u.Username != "mo_yan" {
		t.Errorf("Username = %q, want %q", u.Username, "mo_yan")
	}
	if u.Avatar != "https://cdn/x.png" {
		t.Errorf("Avatar = %q, want alias from avatar_url", u.Avatar)
	}
	if u.Email != "" {
		t.Errorf("Email = %q, want empty string for omitted field", u.Email)
	}
}

func TestUserUnmarshalDefaults(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"id":1,"name":"alt"}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if u.Username != "alt" {
		t.Errorf("Username = %q, want alias from name", u.Username)
	}
	if u.Role != "user" {
		t.Errorf("Role = %q, want default %q", u.Role, "user")
	}
}
