package sqlite

import (
	"context"
	"database/sql"

	"helpmap/internal/model"
	"helpmap/internal/repository"
)

// HelpRequestSQLite is a SQLite implementation of repository.HelpRequestRepository.
// Writes run in a request-scoped transaction; conflicting writers are serialized by SQLite's locking.
type HelpRequestSQLite struct {
	db *sql.DB
}

// NewHelpRequestSQLite creates a new HelpRequestSQLite repository.
func NewHelpRequestSQLite(db *sql.DB) *HelpRequestSQLite {
	return &HelpRequestSQLite{db: db}
}

var _ repository.HelpRequestRepository = (*HelpRequestSQLite)(nil)

// Create inserts a new row and returns the stored record.
func (r *HelpRequestSQLite) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	const q = `
		INSERT INTO help_requests (name, contact, location, latitude, longitude, message, timestamp, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	out := *hr
	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q,
			hr.Name,
			hr.Contact,
			hr.Location,
			hr.Latitude,
			hr.Longitude,
			hr.Message,
			hr.Timestamp,
			hr.IPAddress,
		)
		if err != nil {
			return err
		}
		out.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all rows ordered by id.
func (r *HelpRequestSQLite) List(ctx context.Context) ([]model.HelpRequest, error) {
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
func (r *HelpRequestSQLite) FindByID(ctx context.Context, id int64) (*model.HelpRequest, error) {
	const q = `SELECT ` + repository.Columns + ` FROM help_requests WHERE id = ?`
	hr, err := repository.ScanHelpRequest(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &hr, nil
}

// DeleteByIDAndIP removes the row only when both id and ip match.
func (r *HelpRequestSQLite) DeleteByIDAndIP(ctx context.Context, id int64, ip string) (bool, error) {
	const q = `DELETE FROM help_requests WHERE id = ? AND ip_address = ?`
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
