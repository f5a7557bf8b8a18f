package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/google/uuid"
)

// PostRepository keeps posts in a map keyed by id.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]models.Post
	now   func() time.Time
	last  time.Time
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]models.Post), now: time.Now}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := *post
	p.ID = id.String()
	// a wall clock stepping back must not reorder newer posts behind older ones
	ts := r.now().UTC()
	if ts.Before(r.last) {
		ts = r.last
	}
	r.last = ts
	p.CreatedAt = ts
	r.posts[p.ID] = p

	return &p, nil
}

// List returns posts ordered by creation time, newest first; ids break ties.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	result := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		result = append(result, p)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *PostRepository) Find(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *PostRepository) UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, common.ErrorNotFound
	}

	p = patch.Apply(p)
	r.posts[id] = p
	return &p, nil
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return false, nil
	}

	delete(r.posts, id)
	return true, nil
}
