// Package common defines sentinel errors shared across the storage layer and
// the services built on top of it. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Auth / session errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("operation not permitted for this role")

	// Messaging errors.
	ErrEmptyMessage  = errors.New("empty message")
	ErrPolicyBlocked = errors.New("message rejected by safety policy")

	// Agreement lifecycle errors.
	ErrAlreadySigned = errors.New("agreement already signed")
)
