package postgres

import (
	"context"
	"fmt"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify the connection before handing the pool out
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return dbpool, nil
}
