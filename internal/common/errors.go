// Package common defines shared sentinel errors used across the College Cupid
// client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrAuthDecode  = errors.New("malformed auth callback payload")
	ErrAuthMissing = errors.New("not authenticated")

	// ErrUnauthorized means the backend rejected the bearer token (401).
	// The session store must be cleared wholesale when this surfaces.
	ErrUnauthorized = errors.New("unauthorized")

	// Local precondition errors. These never produce a network call.
	ErrValidation     = errors.New("validation failed")
	ErrFileConstraint = errors.New("file rejected")

	// Transport errors (request failed or non-2xx response).
	ErrNetwork = errors.New("network error")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
