package session

import "fyne.io/fyne/v2"

// Preference key for the persisted token
const keySessionToken = "session_token"

// Store holds the opaque session token in Fyne preferences.
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a token store backed by the given preferences.
func NewStore(prefs fyne.Preferences) *Store {
	return &Store{prefs: prefs}
}

// Token returns the persisted token, or the empty string when the device is
// unauthenticated.
func (s *Store) Token() string {
	return s.prefs.String(keySessionToken)
}

// HasToken reports whether a token is currently persisted.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}

// SetToken persists the token. At most one token is active per device; a new
// login replaces the previous one.
func (s *Store) SetToken(token string) {
	s.prefs.SetString(keySessionToken, token)
}

// Clear removes the persisted token.
func (s *Store) Clear() {
	s.prefs.RemoveValue(keySessionToken)
}
