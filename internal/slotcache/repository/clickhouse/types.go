package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Conn is the subset of driver.Conn used by the repository.
	Conn interface {
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		QueryRow(ctx context.Context, query string, args ...any) driver.Row
		Ping(ctx context.Context) error
		Close() error
	}
	// Row mirrors driver.Row.
	Row interface {
		Err() error
		Scan(dest ...any) error
		ScanStruct(dest any) error
	}
)
