package model

// Package model defines transport-level data structures shared across the app:
// books, chapters, rankings, reading lists, interaction counters, user identity,
// pagination metadata, and the auth state enum. Records are flat and transient;
// they are re-fetched per screen visit and never cached beyond local state.
