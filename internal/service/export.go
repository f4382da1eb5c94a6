package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"helpmap/internal/repository"
	"helpmap/internal/storage"
)

// ExportLinkTTL is how long the presigned download link of an export stays valid.
const ExportLinkTTL = 24 * time.Hour

// ExportResult describes an uploaded snapshot.
type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
	URL   string `json:"url"`
}

// ExportService writes JSON snapshots of all help requests to object storage.
type ExportService interface {
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store storage.Storage
	repo  repository.HelpRequestRepository
	now   func() time.Time
}

// NewExportService constructs a new ExportService.
func NewExportService(store storage.Storage, repo repository.HelpRequestRepository) ExportService {
	return &exportService{store: store, repo: repo, now: time.Now}
}

// Export uploads every row as the same JSON array served by the list API.
func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list help requests: %w", err)
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := fmt.Sprintf("exports/help_requests-%d.json", s.now().UTC().Unix())
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"row-count": strconv.Itoa(len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	link, err := s.store.PresignGet(ctx, info.Key, ExportLinkTTL)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{
		Key:   info.Key,
		Count: len(items),
		Size:  info.Size,
		URL:   link,
	}, nil
}
