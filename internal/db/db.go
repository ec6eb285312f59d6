// internal/db/db.go
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/unclebandit/storefront-backend/internal/config"
)

// Gateway is everything the repositories need from the database: run one
// statement and scan every returned row into dest (a pointer to a slice).
// Inserts, updates and deletes use RETURNING so they come back as rows too.
type Gateway interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	PingContext(ctx context.Context) error
}

var _ Gateway = (*sqlx.DB)(nil)

const pingTimeout = 5 * time.Second

// Open connects to Postgres and checks the connection before returning.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	d, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	d.SetMaxOpenConns(cfg.MaxOpenConns)
	d.SetMaxIdleConns(cfg.MaxIdleConns)
	d.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := d.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return d, nil
}

// SQLState returns the Postgres error code carried by err, or "" when err did
// not come from the server (connection refused, context canceled, ...).
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// SQLStateClass is the human name of the code class, e.g. "integrity_constraint_violation".
func SQLStateClass(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class().Name()
	}
	return ""
}
