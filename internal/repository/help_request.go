package repository

import (
	"context"
	"database/sql"
	"fmt"

	"helpmap/internal/model"
)

// HelpRequestRepository defines data access for help requests using SQL queries only.
// No business logic here, only persistence.
type HelpRequestRepository interface {
	// Create inserts a new row and returns it with the storage-assigned ID.
	Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error)

	// List returns every row in insertion order. The result is never nil.
	List(ctx context.Context) ([]model.HelpRequest, error)

	// FindByID returns a row by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.HelpRequest, error)

	// DeleteByIDAndIP removes the row matching both id and ip.
	// It reports whether a row was removed.
	DeleteByIDAndIP(ctx context.Context, id int64, ip string) (bool, error)
}

// WithTx runs fn inside a transaction bound to ctx.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w; rollback failed: %v", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanHelpRequest reads the columns listed in Columns into a HelpRequest.
func ScanHelpRequest(s Scanner) (model.HelpRequest, error) {
	var hr model.HelpRequest
	err := s.Scan(
		&hr.ID,
		&hr.Name,
		&hr.Contact,
		&hr.Location,
		&hr.Latitude,
		&hr.Longitude,
		&hr.Message,
		&hr.Timestamp,
		&hr.IPAddress,
	)
	return hr, err
}

// Columns is the select list matching ScanHelpRequest.
const Columns = "id, name, contact, location, latitude, longitude, message, timestamp, ip_address"
