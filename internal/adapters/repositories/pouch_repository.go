package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// Postgres-backed implementation of the PouchRepository port.
type PostgresPouchRepository struct{ DB *sql.DB }

func NewPostgresPouchRepository(db *sql.DB) *PostgresPouchRepository {
	return &PostgresPouchRepository{DB: db}
}

// ListPouchesWithShipments reads pouches and every linked shipment in one
// query. A shipment is linked when it points at the pouch or the pouch
// points at it.
func (r *PostgresPouchRepository) ListPouchesWithShipments(
	ctx context.Context,
	sectorID *int64,
	dir domain.Direction,
) (_ []ports.PouchWithShipments, err error) {
	defer obs.Time(ctx, "pouches.repo.ListPouchesWithShipments")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres pouch repository: DB is nil")
	}

	column := "p.destination_sector_id"
	if dir == domain.DirectionOrigin {
		column = "p.origin_sector_id"
	}

	query := fmt.Sprintf(`
	SELECT
		p.id,
		p.number,
		p.origin_sector_id,
		COALESCE(so.name, ''),
		p.destination_sector_id,
		COALESCE(sd.name, ''),
		COALESCE(p.status, ''),
		p.shipment_id,
		s.id,
		COALESCE(s.tracking_number, ''),
		COALESCE(s.status, ''),
		s.origin_sector_id,
		s.destination_sector_id
	FROM pouches p
	LEFT JOIN sectors so ON so.id = p.origin_sector_id
	LEFT JOIN sectors sd ON sd.id = p.destination_sector_id
	LEFT JOIN shipments s ON s.pouch_id = p.id OR s.id = p.shipment_id
	WHERE ($1::bigint IS NULL OR %s = $1)
	ORDER BY p.id, s.id;
	`, column)

	rows, err := r.DB.QueryContext(ctx, query, sectorID)
	if err != nil {
		return nil, fmt.Errorf("list pouches: query pouches table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.PouchWithShipments, 0, 32)
	for rows.Next() {
		var (
			p                                  domain.Pouch
			originID, destID, linkedShipmentID sql.NullInt64
			shipmentID, shipOrigin, shipDest   sql.NullInt64
			tracking, shipStatus               string
		)
		err := rows.Scan(
			&p.ID, &p.Number,
			&originID, &p.OriginSectorName,
			&destID, &p.DestinationSectorName,
			&p.Status, &linkedShipmentID,
			&shipmentID, &tracking, &shipStatus, &shipOrigin, &shipDest,
		)
		if err != nil {
			return nil, fmt.Errorf("list pouches: scan row: %w", err)
		}

		if n := len(out); n == 0 || out[n-1].Pouch.ID != p.ID {
			p.OriginSectorID = nullableID(originID)
			p.DestinationSectorID = nullableID(destID)
			p.ShipmentID = nullableID(linkedShipmentID)
			out = append(out, ports.PouchWithShipments{Pouch: p})
		}

		if shipmentID.Valid {
			last := &out[len(out)-1]
			last.Shipments = append(last.Shipments, domain.Shipment{
				ID:                  shipmentID.Int64,
				TrackingNumber:      tracking,
				Status:              shipStatus,
				OriginSectorID:      nullableID(shipOrigin),
				DestinationSectorID: nullableID(shipDest),
				PouchID:             domain.Int64Ptr(p.ID),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pouches: row iteration: %w", err)
	}

	return out, nil
}

func (r *PostgresPouchRepository) CreatePouch(ctx context.Context, draft domain.PouchDraft) (_ domain.Pouch, err error) {
	defer obs.Time(ctx, "pouches.repo.CreatePouch")(&err)

	if r.DB == nil {
		return domain.Pouch{}, errors.New("postgres pouch repository: DB is nil")
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, `
	INSERT INTO pouches (number, origin_sector_id, destination_sector_id, status, shipment_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
	`, draft.Number, draft.OriginSectorID, draft.DestinationSectorID, draft.Status, draft.ShipmentID).Scan(&id)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("create pouch: insert: %w", err)
	}

	return r.GetPouch(ctx, id)
}

func (r *PostgresPouchRepository) UpdatePouch(ctx context.Context, id int64, draft domain.PouchDraft) (_ domain.Pouch, err error) {
	defer obs.Time(ctx, "pouches.repo.UpdatePouch")(&err)

	if r.DB == nil {
		return domain.Pouch{}, errors.New("postgres pouch repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE pouches
	SET number = $2,
		origin_sector_id = $3,
		destination_sector_id = $4,
		status = $5,
		shipment_id = $6,
		updated_at = now()
	WHERE id = $1;
	`, id, draft.Number, draft.OriginSectorID, draft.DestinationSectorID, draft.Status, draft.ShipmentID)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: rows affected: %w", id, err)
	}
	if n == 0 {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: %w", id, ports.ErrPouchNotFound)
	}

	return r.GetPouch(ctx, id)
}

func (r *PostgresPouchRepository) GetPouch(ctx context.Context, id int64) (_ domain.Pouch, err error) {
	defer obs.Time(ctx, "pouches.repo.GetPouch")(&err)

	if r.DB == nil {
		return domain.Pouch{}, errors.New("postgres pouch repository: DB is nil")
	}

	var (
		p                            domain.Pouch
		originID, destID, shipmentID sql.NullInt64
	)
	err = r.DB.QueryRowContext(ctx, `
	SELECT p.id, p.number, p.origin_sector_id, COALESCE(so.name, ''),
		p.destination_sector_id, COALESCE(sd.name, ''), p.status, p.shipment_id
	FROM pouches p
	LEFT JOIN sectors so ON so.id = p.origin_sector_id
	LEFT JOIN sectors sd ON sd.id = p.destination_sector_id
	WHERE p.id = $1;
	`, id).Scan(&p.ID, &p.Number, &originID, &p.OriginSectorName, &destID, &p.DestinationSectorName, &p.Status, &shipmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pouch{}, fmt.Errorf("get pouch id=%d: %w", id, ports.ErrPouchNotFound)
	}
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("get pouch id=%d: %w", id, err)
	}

	p.OriginSectorID = nullableID(originID)
	p.DestinationSectorID = nullableID(destID)
	p.ShipmentID = nullableID(shipmentID)
	return p, nil
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return domain.Int64Ptr(v.Int64)
}
