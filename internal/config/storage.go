package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	StoreLocal = "local"
	StoreS3    = "s3"
)

// StorageConfig selects where exported DOCX files are kept. S3_ENDPOINT
// points the S3 client at R2 or MinIO.
type StorageConfig struct {
	Backend   string
	Dir       string
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = readStorageConfig()
	})
	return storageConfig
}

func readStorageConfig() *StorageConfig {
	return &StorageConfig{
		Backend:   strings.ToLower(envOr("EXPORT_STORE", StoreLocal)),
		Dir:       envOr("EXPORT_DIR", "./exports"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    envOr("S3_REGION", "auto"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}
}

func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case StoreLocal:
		return nil
	case StoreS3:
		if c.Bucket == "" {
			return fmt.Errorf("S3_BUCKET not set")
		}
		return nil
	default:
		return fmt.Errorf("unknown EXPORT_STORE %q", c.Backend)
	}
}
