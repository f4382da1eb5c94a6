package postgres

import (
	"context"
	"database/sql"

	"helpmap/internal/model"
	"helpmap/internal/repository"
)

// HelpRequestPostgres is a PostgreSQL implementation of repository.HelpRequestRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type HelpRequestPostgres struct {
	db *sql.DB
}

// NewHelpRequestPostgres creates a new HelpRequestPostgres repository.
func NewHelpRequestPostgres(db *sql.DB) *HelpRequestPostgres {
	return &HelpRequestPostgres{db: db}
}

var _ repository.HelpRequestRepository = (*HelpRequestPostgres)(nil)

// Create inserts a new row and returns the stored record.
func (r *HelpRequestPostgres) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	const q = `
		INSERT INTO help_requests (name, contact, location, latitude, longitude, message, timestamp, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + repository.Columns

	var out model.HelpRequest
	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, q,
			hr.Name,
			hr.Contact,
			hr.Location,
			hr.Latitude,
			hr.Longitude,
			hr.Message,
			hr.Timestamp,
			hr.IPAddress,
		)
		var err error
		out, err = repository.ScanHelpRequest(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all rows ordered by id.
func (r *HelpRequestPostgres) List(ctx context.Context) ([]model.HelpRequest, error) {
	const q = `SELECT ` + repository.Columns + ` FROM help_requests ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HelpRequest, 0)
	for rows.Next() {
		hr, err := repository.ScanHelpRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single row by its ID.
func (r *HelpRequestPostgres) FindByID(ctx context.Context, id int64) (*model.HelpRequest, error) {
	const q = `SELECT ` + repository.Columns + ` FROM help_requests WHERE id = $1`
	hr, err := repository.ScanHelpRequest(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &hr, nil
}

// DeleteByIDAndIP removes the row only when both id and ip match.
func (r *HelpRequestPostgres) DeleteByIDAndIP(ctx context.Context, id int64, ip string) (bool, error) {
	const q = `DELETE FROM help_requests WHERE id = $1 AND ip_address = $2`
	var deleted bool
	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, id, ip)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
