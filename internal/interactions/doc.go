package interactions

// Package interactions wraps the /interactions resource family: the current
// user's like/star state for a book and the toggle mutations. Reading the
// state is supplementary display data (fallback); toggles are user actions
// and propagate. Toggles carry no client-side debouncing or idempotency key:
// two calls issue two POSTs.
