package models

import "time"

// Post is a blog entry. AuthorID is set once at creation from the caller's
// verified identity and never changes.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
}

// PostPatch carries the fields an update may change. Nil means "keep".
type PostPatch struct {
	Title   *string
	Content *string
}

// Apply returns a copy of p with the non-nil patch fields applied.
func (patch PostPatch) Apply(p Post) Post {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	return p
}
