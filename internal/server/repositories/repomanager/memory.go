package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps all data in process memory. The same
// repository instances are returned on every call.
type InMemoryRepositoryManager struct {
	users *memory.UserRepository
	posts *memory.PostRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: memory.NewUserRepository(),
		posts: memory.NewPostRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
