package model

// AuthState represents the authentication state of the running session
type AuthState string

const (
	// AuthStateUnauthenticated means no token and no identity are present
	AuthStateUnauthenticated AuthState = "Unauthenticated"

	// AuthStateChecking means the startup probe is in flight
	AuthStateChecking AuthState = "Checking"

	// AuthStateAuthenticated means a token and a verified identity are present
	AuthStateAuthenticated AuthState = "Authenticated"

	// AuthStateAuthenticatedUnverified means a persisted token was found at
	// startup but no profile has been fetched; the identity is a placeholder
	AuthStateAuthenticatedUnverified AuthState = "AuthenticatedUnverified"
)

// String returns the string representation of AuthState
func (as AuthState) String() string {
	return string(as)
}

// IsAuthenticated returns true if the session carries a usable identity,
// verified or placeholder
func (as AuthState) IsAuthenticated() bool {
	return as == AuthStateAuthenticated || as == AuthStateAuthenticatedUnverified
}

// IsSettled returns true once the startup probe has resolved either way
func (as AuthState) IsSettled() bool {
	return as != AuthStateChecking
}
