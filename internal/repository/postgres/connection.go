package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/dtroode/notes-server/database"
)

const uniqueViolation = "23505"

// DBTX is the subset of database/sql the repositories need. *sql.DB and
// *sql.Tx both satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Connection is a database/sql handle over the pgx driver. Migrations and the
// repositories share it.
type Connection struct {
	*sql.DB
}

// NewConnection opens a pool for dsn, checks it and applies migrations. Pool
// limits use the pgxpool DSN parameters (pool_max_conns and friends).
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	conn := &Connection{DB: openDB(conf)}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := database.Migrate(ctx, conn.DB); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return conn, nil
}

func openDB(conf *pgxpool.Config) *sql.DB {
	db := stdlib.OpenDB(*conf.ConnConfig)
	db.SetMaxOpenConns(int(conf.MaxConns))
	db.SetConnMaxLifetime(conf.MaxConnLifetime)
	db.SetConnMaxIdleTime(conf.MaxConnIdleTime)
	return db
}

func (c *Connection) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("connection is nil")
	}
	return c.DB.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
