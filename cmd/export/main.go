// Command export uploads a JSON snapshot of all help requests to object storage
// and prints a presigned download link.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"helpmap/internal/config"
	"helpmap/internal/database"
	"helpmap/internal/logging"
	"helpmap/internal/repository"
	"helpmap/internal/repository/postgres"
	"helpmap/internal/repository/sqlite"
	"helpmap/internal/service"
	"helpmap/internal/storage"
)

func main() {
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		logrus.WithError(err).Fatal("invalid timezone")
	}
	log := logging.New(os.Stderr, cfg.LogLevel, loc)

	res, err := export(cfg)
	if err != nil {
		log.WithError(err).Fatal("export failed")
	}

	log.WithFields(logrus.Fields{
		"key":   res.Key,
		"count": res.Count,
		"size":  res.Size,
	}).Info("export uploaded")
	fmt.Println(res.URL)
}

func export(cfg *config.AppConfig) (*service.ExportResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var repo repository.HelpRequestRepository
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		repo = postgres.NewHelpRequestPostgres(db)
	default:
		repo = sqlite.NewHelpRequestSQLite(db)
	}

	store, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return nil, err
	}

	return service.NewExportService(store, repo).Export(ctx)
}
