// Package users is the credential store: it creates user accounts and looks
// them up by email. Email addresses are unique; a second account with the
// same email fails with common.ErrorAlreadyExists.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/server/models"
)

type Repository interface {
	// Create assigns ID and CreatedAt, persists the user and returns it.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns common.ErrorNotFound when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
