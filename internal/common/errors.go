// Package common defines sentinel errors and shared constants used across
// the server, the REST transport and the command-line client. Callers should
// match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Auth errors.
	ErrMissingToken       = errors.New("no token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user exists")
	ErrEmptySigningKey    = errors.New("signing key is empty")
)
