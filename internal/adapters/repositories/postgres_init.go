package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the tables used by the service. It is idempotent.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSectorsQuery := `
	CREATE TABLE IF NOT EXISTS sectors (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		street TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		latitude TEXT,
		longitude TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createPouchesQuery := `
	CREATE TABLE IF NOT EXISTS pouches (
		id BIGSERIAL PRIMARY KEY,
		number TEXT NOT NULL,
		origin_sector_id BIGINT REFERENCES sectors(id),
		destination_sector_id BIGINT REFERENCES sectors(id),
		status TEXT NOT NULL DEFAULT 'Disponivel',
		shipment_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		id BIGSERIAL PRIMARY KEY,
		tracking_number TEXT NOT NULL UNIQUE,
		sender_id BIGINT,
		recipient_id BIGINT,
		origin_sector_id BIGINT REFERENCES sectors(id),
		destination_sector_id BIGINT REFERENCES sectors(id),
		status TEXT NOT NULL DEFAULT 'pendente',
		pouch_id BIGINT REFERENCES pouches(id),
		urgent BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		delivered_at TIMESTAMPTZ
	);
	`

	createConfigQuery := `
	CREATE TABLE IF NOT EXISTS app_config (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createCoordinateCacheQuery := `
	CREATE TABLE IF NOT EXISTS coordinate_cache (
		cache_key TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		path JSONB NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQueries := []string{
		`CREATE INDEX IF NOT EXISTS idx_shipments_pouch_id ON shipments(pouch_id);`,
		`CREATE INDEX IF NOT EXISTS idx_pouches_origin_sector ON pouches(origin_sector_id);`,
		`CREATE INDEX IF NOT EXISTS idx_pouches_destination_sector ON pouches(destination_sector_id);`,
	}

	statements := []string{
		createSectorsQuery,
		createPouchesQuery,
		createShipmentsQuery,
		createConfigQuery,
		createCoordinateCacheQuery,
		createRouteCacheQuery,
	}
	statements = append(statements, createIndexQueries...)

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
