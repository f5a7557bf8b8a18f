package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophblog/internal/server/models"
)

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   []*models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = append(f.created, u)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *u
	out.ID = "u-new"
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// fakePostsRepo records every call; tests assert on what reached storage.
type fakePostsRepo struct {
	mu    sync.Mutex
	calls []string

	listOut []models.Post
	listErr error

	findOut *models.Post
	findErr error

	createErr error
	created   *models.Post

	updateOut   *models.Post
	updateErr   error
	updateArgs  []string
	updatePatch models.PostPatch

	deleteOut  bool
	deleteErr  error
	deleteArgs []string
}

func (f *fakePostsRepo) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakePostsRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	f.record("Create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *p
	out.ID = "018f0000-0000-7000-8000-000000000001"
	f.created = &out
	return &out, nil
}

func (f *fakePostsRepo) List(ctx context.Context) ([]models.Post, error) {
	f.record("List")
	return f.listOut, f.listErr
}

func (f *fakePostsRepo) Find(ctx context.Context, id string) (*models.Post, error) {
	f.record("Find")
	return f.findOut, f.findErr
}

func (f *fakePostsRepo) UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	f.record("UpdateOwned")
	f.updateArgs = []string{id, authorID}
	f.updatePatch = patch
	return f.updateOut, f.updateErr
}

func (f *fakePostsRepo) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	f.record("DeleteOwned")
	f.deleteArgs = []string{id, authorID}
	return f.deleteOut, f.deleteErr
}
