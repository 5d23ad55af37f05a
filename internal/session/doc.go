package session

// Package session persists the opaque authentication token in the device's
// preference storage so it survives process restarts. Absence of a token is a
// normal state, never an error. The store is single-writer (the auth
// controller) and multi-reader (every outgoing request).
