package rest

// Package rest wraps HTTP access to the backend REST API. It attaches the
// session token as a bearer credential, tags every request with a correlation
// id, strips empty query parameters, enforces the request timeout, and
// normalizes every failure into one of four error kinds: NetworkError,
// TimeoutError, HTTPStatusError, ValidationError. Domain services never touch
// net/http directly.
