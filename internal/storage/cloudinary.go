package storage

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
)

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg *config.Cloudinary) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: "doc-avatars"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filePath, contentType string) (*UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, errors.New(resp.Error.Message)
	}
	return &UploadResult{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
	}, nil
}
