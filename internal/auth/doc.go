package auth

// Package auth wraps the /auth resource family and owns the session
// lifecycle. Service issues login/register/logout calls; Controller composes
// it with the session store into the application-wide authentication state
// machine and broadcasts identity changes to subscribers. The controller is
// the only writer of the session store.
