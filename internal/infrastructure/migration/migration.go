package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		slog.Info("Job log disabled, skipping migrations")
		return nil
	}
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema changes in the order they are applied.
func Migrations() []Migration {
	ms := []Migration{
		{
			Name: "create_export_jobs",
			SQL: `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id             UUID PRIMARY KEY,
			format         TEXT NOT NULL,
			candidate_name TEXT NOT NULL DEFAULT '',
			target_job     TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL,
			metadata       JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`,
		},
		{
			Name: "index_export_jobs_created_at",
			SQL: `
		CREATE INDEX IF NOT EXISTS export_jobs_created_at_idx
		ON export_jobs (created_at DESC);
	`,
		},
	}
	for i := range ms {
		sql := ms[i].SQL
		ms[i].Up = func(ctx context.Context, pool *pgxpool.Pool) error {
			_, err := pool.Exec(ctx, sql)
			return err
		}
	}
	return ms
}
