package storage

import (
	"context"
	"fmt"

	"github.com/fadilmartias/cover-letter-assistant/internal/config"
)

// ArtifactStore keeps exported documents under caller-chosen keys.
type ArtifactStore interface {
	Save(ctx context.Context, key string, contentType string, data []byte) error
}

// New builds the store selected by EXPORT_STORE.
func New(ctx context.Context, cfg *config.StorageConfig) (ArtifactStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.StoreS3:
		return NewS3Store(ctx, S3Options{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	case config.StoreLocal:
		return NewLocalStore(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unknown export store %q", cfg.Backend)
	}
}
