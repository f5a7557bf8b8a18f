package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
	"github.com/google/uuid"
)

// PostService enforces post ownership on top of a posts.Repository. The
// caller's identity always comes from a verified token, never from input.
//
// Update and Delete do not tell "not found" apart from "not yours": both
// collapse into an empty result.
type PostService struct {
	posts  posts.Repository
	logger logging.Logger
}

// NewPostService constructs a PostService.
func NewPostService(repo posts.Repository, logger logging.Logger) *PostService {
	return &PostService{posts: repo, logger: logger.With("module", "posts")}
}

// List returns all posts newest first, read fresh from storage on every call.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	list, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

// Get returns a single post or common.ErrorNotFound.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	return s.posts.Find(ctx, id)
}

// Create stores a post authored by authorID.
func (s *PostService) Create(ctx context.Context, authorID, title, content string) (*models.Post, error) {
	p, err := s.posts.Create(ctx, &models.Post{Title: title, Content: content, AuthorID: authorID})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.logger.Info(ctx, "post created", "post_id", p.ID, "author", authorID)
	return p, nil
}

// Update applies patch iff the post exists and belongs to authorID. It
// returns (nil, nil) when nothing matched.
func (s *PostService) Update(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	if !validID(id) {
		return nil, nil
	}

	p, err := s.posts.UpdateOwned(ctx, id, authorID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "update matched nothing", "post_id", id, "caller", authorID)
			return nil, nil
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// Delete removes the post iff it belongs to authorID. A miss is not an error.
func (s *PostService) Delete(ctx context.Context, id, authorID string) error {
	if !validID(id) {
		return nil
	}

	deleted, err := s.posts.DeleteOwned(ctx, id, authorID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.logger.Debug(ctx, "delete", "post_id", id, "caller", authorID, "deleted", deleted)
	return nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
