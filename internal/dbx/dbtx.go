// Package dbx provides the small database/sql abstractions shared by the
// SQL repositories: the DBTX handle, dialect-aware placeholder rebinding and
// driver-independent error classification.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect selects placeholder syntax and migration flavour.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Rebind rewrites '?' placeholders into the dialect's native form.
// Postgres gets $1..$n; SQLite keeps '?'. Question marks inside single
// quoted literals are left alone.
func Rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SQLite result codes: SQLITE_CONSTRAINT and its UNIQUE extended form.
const (
	sqliteConstraint       = 19
	sqliteConstraintUnique = 2067
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either PostgreSQL (SQLSTATE 23505) or SQLite.
func IsUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23505"
	}

	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		code := coded.Code()
		if code == sqliteConstraintUnique {
			return true
		}
		// primary code only when extended result codes are off
		return code&0xff == sqliteConstraint && strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}
