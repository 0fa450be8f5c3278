package audit

import "errors"

// Collaborator failures and terminal audit states, distinguishable with
// errors.Is. Authentication and retrieval failures carry their cause wrapped.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrRetrieval      = errors.New("resource retrieval failed")
	ErrNoResources    = errors.New("no resources found to audit")
	ErrNonCompliant   = errors.New("one or more resources are missing required tags")
)
