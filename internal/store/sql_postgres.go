package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/config"
	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB handle together with the application logger.
// All repositories operate through this type.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver, configures the pool, and verifies connectivity with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies all pending goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// postgresError returns the PostgreSQL error code carried by err, or an empty
// string when err did not originate from the driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
