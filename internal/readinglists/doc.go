package readinglists

// Package readinglists wraps the /reading-lists resource family: the user's
// lists, the starred-books shelf, and list membership mutations. Listing
// reads follow the fallback policy; create/delete/add/remove are user
// actions and propagate. Bookshelf entries are normalized from the backend's
// heterogeneous author/progress shapes before they reach the UI.
