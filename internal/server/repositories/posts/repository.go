// Package posts provides storage for blog posts. Mutations that depend on
// ownership are single conditional statements so no caller can observe or
// race a separate existence check.
package posts

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/server/models"
)

type Repository interface {
	// Create assigns ID and CreatedAt, persists the post and returns it.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// List returns every post, newest first.
	List(ctx context.Context) ([]models.Post, error)
	// Find returns common.ErrorNotFound if the post does not exist.
	Find(ctx context.Context, id string) (*models.Post, error)
	// UpdateOwned applies patch to the post iff it exists and authorID owns
	// it, returning the updated post. Otherwise common.ErrorNotFound.
	UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error)
	// DeleteOwned removes the post iff authorID owns it and reports whether
	// a row was removed.
	DeleteOwned(ctx context.Context, id, authorID string) (bool, error)
}
