package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type SectorSeed struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
}

type PouchSeed struct {
	ID                  int64  `json:"id"`
	Number              string `json:"number"`
	OriginSectorID      *int64 `json:"origin_sector_id"`
	DestinationSectorID *int64 `json:"destination_sector_id"`
	Status              string `json:"status"`
}

type ShipmentSeed struct {
	ID                  int64  `json:"id"`
	TrackingNumber      string `json:"tracking_number"`
	OriginSectorID      *int64 `json:"origin_sector_id"`
	DestinationSectorID *int64 `json:"destination_sector_id"`
	Status              string `json:"status"`
	PouchID             *int64 `json:"pouch_id"`
	Urgent              bool   `json:"urgent"`
	Description         string `json:"description"`
}

// Seed is the layout of the seed file.
type Seed struct {
	Config    map[string]string `json:"config"`
	Sectors   []SectorSeed      `json:"sectors"`
	Pouches   []PouchSeed       `json:"pouches"`
	Shipments []ShipmentSeed    `json:"shipments"`
}

// Validate checks ids and required fields before anything is written.
func (s Seed) Validate() error {
	for i, sec := range s.Sectors {
		if sec.ID <= 0 {
			return fmt.Errorf("seed: invalid sector id at index %d: %d", i+1, sec.ID)
		}
		if strings.TrimSpace(sec.Name) == "" {
			return fmt.Errorf("seed: sector at index %d: name cannot be empty", i+1)
		}
	}
	for i, p := range s.Pouches {
		if p.ID <= 0 {
			return fmt.Errorf("seed: invalid pouch id at index %d: %d", i+1, p.ID)
		}
		if strings.TrimSpace(p.Number) == "" {
			return fmt.Errorf("seed: pouch at index %d: number cannot be empty", i+1)
		}
	}
	for i, sh := range s.Shipments {
		if sh.ID <= 0 {
			return fmt.Errorf("seed: invalid shipment id at index %d: %d", i+1, sh.ID)
		}
		if strings.TrimSpace(sh.TrackingNumber) == "" {
			return fmt.Errorf("seed: shipment at index %d: tracking number cannot be empty", i+1)
		}
	}
	return nil
}

// SeedFromJSON loads a Seed file and upserts its rows.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	return ApplySeed(ctx, db, data)
}

// ApplySeed upserts the seed rows in one transaction and moves the id
// sequences past the seeded ids.
func ApplySeed(ctx context.Context, db *sql.DB, data Seed) error {
	if err := data.Validate(); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range data.Config {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO app_config (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
		`, key, value)
		if err != nil {
			return fmt.Errorf("seed: upsert config key=%s: %w", key, err)
		}
	}

	for _, s := range data.Sectors {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO sectors (id, name, code, postal_code, street, number, neighborhood, city, state, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''))
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			code = EXCLUDED.code,
			postal_code = EXCLUDED.postal_code,
			street = EXCLUDED.street,
			number = EXCLUDED.number,
			neighborhood = EXCLUDED.neighborhood,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude;
		`, s.ID, s.Name, s.Code, s.PostalCode, s.Street, s.Number, s.Neighborhood, s.City, s.State, s.Latitude, s.Longitude)
		if err != nil {
			return fmt.Errorf("seed: upsert sector id=%d: %w", s.ID, err)
		}
	}

	for _, p := range data.Pouches {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO pouches (id, number, origin_sector_id, destination_sector_id, status)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'Disponivel'))
		ON CONFLICT (id) DO UPDATE
		SET number = EXCLUDED.number,
			origin_sector_id = EXCLUDED.origin_sector_id,
			destination_sector_id = EXCLUDED.destination_sector_id,
			status = EXCLUDED.status;
		`, p.ID, p.Number, p.OriginSectorID, p.DestinationSectorID, p.Status)
		if err != nil {
			return fmt.Errorf("seed: upsert pouch id=%d: %w", p.ID, err)
		}
	}

	for _, s := range data.Shipments {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO shipments (id, tracking_number, origin_sector_id, destination_sector_id, status, pouch_id, urgent, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET tracking_number = EXCLUDED.tracking_number,
			origin_sector_id = EXCLUDED.origin_sector_id,
			destination_sector_id = EXCLUDED.destination_sector_id,
			status = EXCLUDED.status,
			pouch_id = EXCLUDED.pouch_id,
			urgent = EXCLUDED.urgent,
			description = EXCLUDED.description;
		`, s.ID, s.TrackingNumber, s.OriginSectorID, s.DestinationSectorID, s.Status, s.PouchID, s.Urgent, s.Description)
		if err != nil {
			return fmt.Errorf("seed: upsert shipment id=%d: %w", s.ID, err)
		}
	}

	for _, table := range []string{"sectors", "pouches", "shipments"} {
		q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false);`, table)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed: reset %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
