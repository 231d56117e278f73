package infrastructure

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewJobsPool connects to the export job log database. An empty dsn means the
// job log is disabled and returns a nil pool without error.
func NewJobsPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
