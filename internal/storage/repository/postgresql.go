// Package repository implements the PostgreSQL storage for profiles,
// content sections, pricing plans, chat messages and contact
// submissions. Every method returns an explicit error value; callers
// check per call.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound is returned when a query by key or id matches no row.
var ErrNotFound = errors.New("not found")

// Storage wraps the PostgreSQL connection pool.
type Storage struct {
	DB *sql.DB
}

// New opens a connection to PostgreSQL and verifies it with a ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "repository.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// CheckDatabaseReady verifies that the schema has been migrated.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'profiles'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table profiles missing or query error: %w", err)
	}
	return nil
}
