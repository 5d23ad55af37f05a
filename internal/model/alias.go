package model

import "encoding/json"

// The backend is not consistent about field names: the same logical field can
// arrive under several keys, as a flat value or a nested object. Each entity
// declares an ordered alias table per field; resolution is first-match-wins
// with a documented literal default.

// StringAlias resolves one logical string field from a set of candidate keys.
type StringAlias struct {
	Keys    []string
	Default string
}

// Resolve tries each candidate key in order against the raw record. A match
// is either a non-empty JSON string or an object carrying a non-empty "name"
// or "username" field. When nothing matches, Default is returned.
func (a StringAlias) Resolve(raw map[string]json.RawMessage) string {
	for _, key := range a.Keys {
		v, ok := raw[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return s
		}

		var obj struct {
			Name     string `json:"name"`
			Username string `json:"username"`
		}
		if err := json.Unmarshal(v, &obj); err == nil {
			if obj.Name != "" {
				return obj.Name
			}
			if obj.Username != "" {
				return obj.Username
			}
		}
	}
	return a.Default
}

// NumberAlias resolves one logical numeric field from a set of candidate keys.
type NumberAlias struct {
	Keys    []string
	Default float64
}

// Resolve tries each candidate key in order and returns the first value that
// decodes as a JSON number, or Default when nothing matches.
func (a NumberAlias) Resolve(raw map[string]json.RawMessage) float64 {
	for _, key := range a.Keys {
		v, ok := raw[key]
		if !ok {
			continue
		}

		var n float64
		if err := json.Unmarshal(v, &n); err == nil {
			return n
		}
	}
	return a.Default
}
