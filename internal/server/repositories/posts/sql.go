package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/dbx"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/google/uuid"
)

// SQLRepository implements post storage over a dbx.DBTX for PostgreSQL or SQLite.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

const postColumns = `id, title, content, author_id, created_at`

func (r *SQLRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	p := *post
	p.ID = id.String()
	p.CreatedAt = r.now().UTC()

	query := dbx.Rebind(r.dialect,
		`INSERT INTO posts (`+postColumns+`)
		 VALUES (?, ?, ?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Content, p.AuthorID, p.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &p, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Post, 0)
	for rows.Next() {
		var item models.Post
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.AuthorID, dbx.ScanTime(&item.CreatedAt)); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Find(ctx context.Context, id string) (*models.Post, error) {
	query := dbx.Rebind(r.dialect,
		`SELECT `+postColumns+` FROM posts
		 WHERE id = ?`)

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// UpdateOwned patches title and content in one statement guarded by the
// ownership predicate. A nil patch field keeps the stored value.
func (r *SQLRepository) UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	query := dbx.Rebind(r.dialect,
		`UPDATE posts
		 SET title = COALESCE(?, title), content = COALESCE(?, content)
		 WHERE id = ? AND author_id = ?
		 RETURNING `+postColumns)

	row := r.db.QueryRowContext(ctx, query, nullable(patch.Title), nullable(patch.Content), id, authorID)
	return r.scanOne(row)
}

func (r *SQLRepository) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	query := dbx.Rebind(r.dialect,
		`DELETE FROM posts
		 WHERE id = ? AND author_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *SQLRepository) scanOne(row *sql.Row) (*models.Post, error) {
	p := &models.Post{}
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, dbx.ScanTime(&p.CreatedAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
