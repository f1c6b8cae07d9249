// Package storage uploads doctor avatars to an external image host. The
// backend is selected by config; each backend returns a public id and URL
// that are stored on the doctor record.
package storage

import (
	"context"
	"fmt"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
)

// UploadResult is the external reference persisted on the User document.
type UploadResult struct {
	PublicID string
	URL      string
}

// Uploader sends a staged local file to the configured image host.
type Uploader interface {
	Upload(ctx context.Context, filePath, contentType string) (*UploadResult, error)
}

// New builds the Uploader named by cfg.Storage.Backend.
func New(cfg *config.Container) (Uploader, error) {
	switch cfg.Storage.Backend {
	case "cloudinary":
		return NewCloudinaryUploader(cfg.Cloudinary)
	case "minio":
		return NewMinioUploader(cfg.Minio)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
