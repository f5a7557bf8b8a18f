package repomanager

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLite opens a migrated in-memory SQLite database.
func newSQLite(t *testing.T) *SQLRepositoryManager {
	t.Helper()

	m, err := NewSQLiteRepositoryManager(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.RunMigrations(context.Background()))
	return m
}

func TestSQLite_Users(t *testing.T) {
	ctx := context.Background()
	m := newSQLite(t)
	repo := m.Users()

	u, err := repo.Create(ctx, &models.User{UserName: "u1", Email: "e1@x.com", PasswordHash: "digest"})
	require.NoError(t, err)

	got, err := repo.GetUserByEmail(ctx, "e1@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "digest", got.PasswordHash)
	assert.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = repo.Create(ctx, &models.User{UserName: "dup", Email: "e1@x.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.GetUserByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_Posts(t *testing.T) {
	ctx := context.Background()
	m := newSQLite(t)
	repo := m.Posts()

	var created []*models.Post
	for _, title := range []string{"first", "second", "third"} {
		p, err := repo.Create(ctx, &models.Post{Title: title, Content: "c", AuthorID: "owner"})
		require.NoError(t, err)
		created = append(created, p)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{list[0].Title, list[1].Title, list[2].Title})

	target := created[0]

	title := "stolen"
	got, err := repo.UpdateOwned(ctx, target.ID, "intruder", models.PostPatch{Title: &title})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	deleted, err := repo.DeleteOwned(ctx, target.ID, "intruder")
	require.NoError(t, err)
	assert.False(t, deleted)

	content := "edited"
	got, err = repo.UpdateOwned(ctx, target.ID, "owner", models.PostPatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "edited", got.Content)
	assert.Equal(t, "owner", got.AuthorID)
	assert.WithinDuration(t, target.CreatedAt, got.CreatedAt, time.Millisecond)

	found, err := repo.Find(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Content)

	deleted, err = repo.DeleteOwned(ctx, target.ID, "owner")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Find(ctx, target.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
