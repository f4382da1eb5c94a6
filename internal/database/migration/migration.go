package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"helpmap/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_help_requests",
		SQL: `CREATE TABLE IF NOT EXISTS help_requests (
  id         BIGSERIAL        PRIMARY KEY,
  name       TEXT             NOT NULL,
  contact    TEXT             NOT NULL,
  location   TEXT             NOT NULL,
  latitude   DOUBLE PRECISION NOT NULL,
  longitude  DOUBLE PRECISION NOT NULL,
  message    TEXT             NOT NULL,
  timestamp  TEXT             NOT NULL,
  ip_address TEXT             NOT NULL
);`,
	},
}

// Run brings the schema for driver up to date.
func Run(ctx context.Context, db *sql.DB, c config.DatabaseConfig, log logrus.FieldLogger) error {
	switch c.Driver {
	case "", config.DriverSQLite:
		return MigrateSQLite(db, log)
	case config.DriverPostgres:
		return EnsureMigrated(ctx, db, log, c.Host)
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// EnsureMigrated checks if the 'help_requests' table exists in Postgres and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	l := log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	l.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.help_requests') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		l.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		l.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	for _, step := range postgresSteps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			l.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		l.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	l.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
