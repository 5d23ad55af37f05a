package rest

import (
	"fmt"
	"net/url"
)

// Params holds query parameters before encoding. Keys whose value is nil or
// an empty string are omitted entirely so no meaningless filter reaches the
// backend; every other value is string-coerced. All domain services follow
// this convention.
type Params map[string]any

// Encode converts the parameter set to url.Values, dropping empty entries.
func (p Params) Encode() url.Values {
	values := url.Values{}
	for key, value := range p {
		if value == nil {
			continue
		}
		s := fmt.Sprintf("%v", value)
		if s == "" {
			continue
		}
		values.Set(key, s)
	}
	return values
}
