package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"helpmap/internal/model"
)

var columns = []string{"id", "name", "contact", "location", "latitude", "longitude", "message", "timestamp", "ip_address"}

func TestHelpRequestPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHelpRequestPostgres(db)
	ctx := context.Background()

	hr := &model.HelpRequest{
		Name:      "Giorgi",
		Contact:   "giorgi@example.com",
		Location:  "Batumi",
		Latitude:  41.6168,
		Longitude: 41.6367,
		Message:   "Roof damaged",
		Timestamp: "2026-10-15 09:30:00",
		IPAddress: "192.168.1.10",
	}

	rows := sqlmock.NewRows(columns).
		AddRow(1, hr.Name, hr.Contact, hr.Location, hr.Latitude, hr.Longitude, hr.Message, hr.Timestamp, hr.IPAddress)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO help_requests").
		WithArgs(hr.Name, hr.Contact, hr.Location, hr.Latitude, hr.Longitude, hr.Message, hr.Timestamp, hr.IPAddress).
		WillReturnRows(rows)
	mock.ExpectCommit()

	result, err := repo.Create(ctx, hr)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, hr.IPAddress, result.IPAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHelpRequestPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHelpRequestPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(5, "n", "c", "l", 1.0, 2.0, "m", "2026-10-15 09:30:00", "192.168.1.10")

		mock.ExpectQuery("SELECT (.+) FROM help_requests WHERE id = ").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		hr, err := repo.FindByID(ctx, 5)

		assert.NoError(t, err)
		assert.NotNil(t, hr)
		assert.Equal(t, int64(5), hr.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM help_requests WHERE id = ").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		hr, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, hr)
	})
}

func TestHelpRequestPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHelpRequestPostgres(db)

	rows := sqlmock.NewRows(columns).
		AddRow(1, "n", "c", "l", 1.0, 2.0, "m", "2026-10-15 09:30:00", "192.168.1.10")
	mock.ExpectQuery("SELECT (.+) FROM help_requests ORDER BY id").WillReturnRows(rows)

	items, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHelpRequestPostgres_DeleteByIDAndIP(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHelpRequestPostgres(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM help_requests WHERE id = (.+) AND ip_address = ").
		WithArgs(int64(1), "192.168.1.10").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.DeleteByIDAndIP(ctx, 1, "192.168.1.10")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
