// Package client is the HTTP transport of blogctl. It speaks the blog REST
// API, attaches the bearer token to protected calls and turns error
// responses into *APIError values that also match ErrUnauthorized and
// ErrNotFound through errors.Is.
package client
