package books

// Package books wraps the /books and /search resource family: paginated
// listings, the front-page feed, search, and single-book detail. Listing
// reads follow the fallback policy and never fail the caller; book detail is
// primary-action data and propagates errors.
