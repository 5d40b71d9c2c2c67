package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// Joined origin (so) and destination (sd) sector columns. LEFT JOINs leave
// them NULL when a reference is missing.
const mapSectorColumns = `
	so.id, COALESCE(so.name, ''), COALESCE(so.code, ''), COALESCE(so.postal_code, ''),
	COALESCE(so.street, ''), COALESCE(so.number, ''), COALESCE(so.neighborhood, ''),
	COALESCE(so.city, ''), COALESCE(so.state, ''), COALESCE(so.latitude, ''), COALESCE(so.longitude, ''),
	sd.id, COALESCE(sd.name, ''), COALESCE(sd.code, ''), COALESCE(sd.postal_code, ''),
	COALESCE(sd.street, ''), COALESCE(sd.number, ''), COALESCE(sd.neighborhood, ''),
	COALESCE(sd.city, ''), COALESCE(sd.state, ''), COALESCE(sd.latitude, ''), COALESCE(sd.longitude, '')`

// Postgres-backed implementation of the MapRepository port.
type PostgresMapRepository struct{ DB *sql.DB }

func NewPostgresMapRepository(db *sql.DB) *PostgresMapRepository {
	return &PostgresMapRepository{DB: db}
}

func (r *PostgresMapRepository) ListPouchMapRows(ctx context.Context, sectorID *int64) (_ []ports.MapRow, err error) {
	defer obs.Time(ctx, "maps.repo.ListPouchMapRows")(&err)

	query := `
	SELECT
		p.id, p.number, COALESCE(p.status, ''),
		COALESCE((
			SELECT json_agg(s.status)
			FROM shipments s
			WHERE s.pouch_id = p.id OR s.id = p.shipment_id
		), '[]'::json),` + mapSectorColumns + `
	FROM pouches p
	LEFT JOIN sectors so ON so.id = p.origin_sector_id
	LEFT JOIN sectors sd ON sd.id = p.destination_sector_id
	WHERE $1::bigint IS NULL OR p.origin_sector_id = $1 OR p.destination_sector_id = $1
	ORDER BY p.id;
	`

	return r.list(ctx, domain.KindPouch, query, sectorID)
}

func (r *PostgresMapRepository) ListShipmentMapRows(ctx context.Context, sectorID *int64) (_ []ports.MapRow, err error) {
	defer obs.Time(ctx, "maps.repo.ListShipmentMapRows")(&err)

	query := `
	SELECT
		s.id, s.tracking_number, COALESCE(s.status, ''), '[]'::json,` + mapSectorColumns + `
	FROM shipments s
	LEFT JOIN sectors so ON so.id = s.origin_sector_id
	LEFT JOIN sectors sd ON sd.id = s.destination_sector_id
	WHERE $1::bigint IS NULL OR s.origin_sector_id = $1 OR s.destination_sector_id = $1
	ORDER BY s.id;
	`

	return r.list(ctx, domain.KindShipment, query, sectorID)
}

func (r *PostgresMapRepository) list(ctx context.Context, kind domain.PointKind, query string, sectorID *int64) ([]ports.MapRow, error) {
	if r.DB == nil {
		return nil, errors.New("postgres map repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, query, sectorID)
	if err != nil {
		return nil, fmt.Errorf("list %s map rows: %w", kind, err)
	}
	defer rows.Close()

	out := make([]ports.MapRow, 0, 64)
	for rows.Next() {
		var (
			row              = ports.MapRow{Kind: kind}
			linked           []byte
			origin, dest     domain.Sector
			originID, destID sql.NullInt64
		)
		err := rows.Scan(
			&row.ID, &row.Label, &row.Status, &linked,
			&originID, &origin.Name, &origin.Code, &origin.PostalCode, &origin.Street, &origin.Number,
			&origin.Neighborhood, &origin.City, &origin.State, &origin.Latitude, &origin.Longitude,
			&destID, &dest.Name, &dest.Code, &dest.PostalCode, &dest.Street, &dest.Number,
			&dest.Neighborhood, &dest.City, &dest.State, &dest.Latitude, &dest.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("list %s map rows: scan row: %w", kind, err)
		}

		if err := json.Unmarshal(linked, &row.LinkedStatuses); err != nil {
			return nil, fmt.Errorf("list %s map rows: decode linked statuses: %w", kind, err)
		}
		if originID.Valid {
			origin.ID = originID.Int64
			row.Origin = &origin
		}
		if destID.Valid {
			dest.ID = destID.Int64
			row.Destination = &dest
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s map rows: row iteration: %w", kind, err)
	}

	return out, nil
}
