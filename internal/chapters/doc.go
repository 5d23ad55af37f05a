package chapters

// Package chapters wraps the /chapters resource family: a book's table of
// contents and full chapter content for the reader. Both reads feed the
// primary reading action, so every method propagates errors.
