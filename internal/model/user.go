package model

import "encoding/json"

// PlaceholderUsername is the generic identity name substituted at startup
// when a persisted token exists but no profile has been fetched.
const PlaceholderUsername = "reader"

// Alias tables for the login response's nested user object.
var (
	userUsernameAlias = StringAlias{Keys: []string{"username", "name", "nickname"}, Default: ""}
	userAvatarAlias   = StringAlias{Keys: []string{"avatar", "avatar_url", "profile_image"}, Default: ""}
	userRoleAlias     = StringAlias{Keys: []string{"role", "user_role"}, Default: "user"}
)

// User is the identity derived from a login response. Email and Avatar are
// optional on the wire and coalesce to the empty string.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// UnmarshalJSON decodes a user record, coalescing aliased fields.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"]; ok {
		_ = json.Unmarshal(v, &u.ID)
	}
	if v, ok := raw["email"]; ok {
		_ = json.Unmarshal(v, &u.Email)
	}
	u.Username = userUsernameAlias.Resolve(raw)
	u.Avatar = userAvatarAlias.Resolve(raw)
	u.Role = userRoleAlias.Resolve(raw)
	return nil
}

// PlaceholderUser returns the zero-id generic identity used while a restored
// session has not been verified against the backend.
func PlaceholderUser() User {
	return User{
		ID:       0,
		Username: PlaceholderUsername,
		Role:     "user",
	}
}
