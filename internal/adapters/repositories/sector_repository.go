package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

const sectorColumns = `
	id, name, code, postal_code, street, number, neighborhood, city, state,
	COALESCE(latitude, ''), COALESCE(longitude, '')`

// Postgres-backed implementation of the SectorRepository port.
type PostgresSectorRepository struct{ DB *sql.DB }

func NewPostgresSectorRepository(db *sql.DB) *PostgresSectorRepository {
	return &PostgresSectorRepository{DB: db}
}

func (r *PostgresSectorRepository) GetSector(ctx context.Context, id int64) (_ domain.Sector, err error) {
	defer obs.Time(ctx, "sectors.repo.GetSector")(&err)

	if r.DB == nil {
		return domain.Sector{}, errors.New("postgres sector repository: DB is nil")
	}

	s, err := scanSector(r.DB.QueryRowContext(ctx, `SELECT `+sectorColumns+` FROM sectors WHERE id = $1;`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sector{}, fmt.Errorf("get sector id=%d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Sector{}, fmt.Errorf("get sector id=%d: %w", id, err)
	}
	return s, nil
}

func (r *PostgresSectorRepository) ListSectors(ctx context.Context) (_ []domain.Sector, err error) {
	defer obs.Time(ctx, "sectors.repo.ListSectors")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres sector repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT `+sectorColumns+` FROM sectors WHERE active ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list sectors: query sectors table: %w", err)
	}
	defer rows.Close()

	sectors := make([]domain.Sector, 0, 64)
	for rows.Next() {
		s, err := scanSector(rows)
		if err != nil {
			return nil, fmt.Errorf("list sectors: scan row: %w", err)
		}
		sectors = append(sectors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sectors: row iteration: %w", err)
	}

	return sectors, nil
}

// UpdateSectorCoordinates stores coordinates in the text columns using a
// dot decimal separator.
func (r *PostgresSectorRepository) UpdateSectorCoordinates(ctx context.Context, id int64, c domain.Coordinates) (err error) {
	defer obs.Time(ctx, "sectors.repo.UpdateSectorCoordinates")(&err)

	if r.DB == nil {
		return errors.New("postgres sector repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx,
		`UPDATE sectors SET latitude = $2, longitude = $3 WHERE id = $1;`,
		id, strconv.FormatFloat(c.Lat, 'f', -1, 64), strconv.FormatFloat(c.Lng, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("update sector coordinates id=%d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update sector coordinates id=%d: %w", id, ports.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSector(row rowScanner) (domain.Sector, error) {
	var s domain.Sector
	err := row.Scan(
		&s.ID, &s.Name, &s.Code, &s.PostalCode, &s.Street, &s.Number,
		&s.Neighborhood, &s.City, &s.State, &s.Latitude, &s.Longitude,
	)
	return s, err
}
