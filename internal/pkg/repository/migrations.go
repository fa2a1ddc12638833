package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Note: in production use a proper migration tool.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		created_on TIMESTAMPTZ NOT NULL,
		created_by TEXT,
		modified_on TIMESTAMPTZ,
		modified_by TEXT,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		booking_id TEXT NOT NULL,
		flight_number TEXT NOT NULL,
		flight_date TIMESTAMPTZ NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL,
		total_price NUMERIC(12,2) NOT NULL,
		contact_id UUID NOT NULL REFERENCES contacts (id),
		created_on TIMESTAMPTZ NOT NULL,
		created_by TEXT,
		modified_on TIMESTAMPTZ,
		modified_by TEXT,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	// the unique index closes the race between the generator's
	// existence check and the later insert
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_booking_id
		ON bookings (booking_id) WHERE NOT is_deleted`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings (id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		birth_date TIMESTAMPTZ NOT NULL,
		created_on TIMESTAMPTZ NOT NULL,
		created_by TEXT,
		modified_on TIMESTAMPTZ,
		modified_by TEXT,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS ix_passengers_booking_id ON passengers (booking_id)`,
}

// RunMigrations ensures the booking schema exists.
func RunMigrations(ctx context.Context, db *pgxpool.Pool) error {
	slog.InfoContext(ctx, "checking database schema...")

	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	slog.InfoContext(ctx, "database schema up to date")

	return nil
}
