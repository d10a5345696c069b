// Package postgres stores the durable slot cache in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// MaxRecentBlocks caps RecentBlocks.
const MaxRecentBlocks = 100

type Repository struct {
	db      *bun.DB
	metrics Metrics
}

// Open connects to PostgreSQL using a postgres:// DSN.
func Open(dsn string, dialTimeout time.Duration) (*bun.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	opts := []pgdriver.Option{pgdriver.WithDSN(dsn)}
	if dialTimeout > 0 {
		opts = append(opts, pgdriver.WithDialTimeout(dialTimeout))
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(opts...))
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

func NewRepository(db *bun.DB, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// Ping verifies the connection.
func (r *Repository) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	if err = r.db.PingContext(ctx); err != nil {
		return storageError("ping postgres", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStorage, err)
}
