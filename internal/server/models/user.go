// Package models defines server-side data models persisted by the repositories.
package models

import "time"

// User is an account created at registration. It is never mutated afterwards.
// PasswordHash is an opaque bcrypt digest and must not leave the server.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
