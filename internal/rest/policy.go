package rest

// ErrorPolicy declares how a service method treats a failed request. The tag
// is published per method in each service's policy table so the contract is
// testable independently of callers.
type ErrorPolicy string

const (
	// Propagate re-raises the normalized error to the caller, which must
	// surface it to the user. Used by mutating and primary-action calls.
	Propagate ErrorPolicy = "propagate"

	// Fallback swallows the error, logs it, and returns a structurally valid
	// empty/default result. Used by supplementary listing reads.
	Fallback ErrorPolicy = "fallback"
)
