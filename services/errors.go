package services

import "fmt"

// AuthError reports a failed client-credentials exchange with the identity
// endpoint. Adapters treat it like any other call failure.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransformError reports a provider response whose shape did not match
// expectations. A single malformed element fails the whole call, so a search
// never silently returns a partial list.
type TransformError struct {
	Resource string
	Err      error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: response transform failed: %v", e.Resource, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
