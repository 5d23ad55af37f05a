package rankings

// Package rankings wraps the /rankings resource family: book, hot, author,
// and character boards. All boards are supplementary display data and follow
// the fallback policy. Rank numbers are re-assigned client-side in array
// order so the UI never shows gaps, and Overview fetches the four boards
// concurrently, tolerating individual failures.
