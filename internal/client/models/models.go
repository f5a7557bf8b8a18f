// Package models holds the client-side view of the blog API payloads.
package models

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is what the client keeps between invocations: the bearer token
// and the user it was issued to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostPatch is a partial update; nil fields are left unchanged on the server.
type PostPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
