// Package repomanager vends the repositories for the configured storage
// backend and owns its lifecycle: opening, schema migrations and closing.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/server/config"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Posts() posts.Repository
	Close() error
}

// New opens the backend named by driver.
func New(driver, dsn string) (RepositoryManager, error) {
	var (
		m   *SQLRepositoryManager
		err error
	)

	switch driver {
	case config.DriverPostgres:
		m, err = NewPostgresRepositoryManager(dsn)
	case config.DriverSQLite:
		m, err = NewSQLiteRepositoryManager(dsn)
	case config.DriverMemory:
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	if err != nil {
		return nil, err
	}
	return m, nil
}
