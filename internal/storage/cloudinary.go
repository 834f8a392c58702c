package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads to a Cloudinary account
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore configures the client from a cloudinary:// URL
func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("storage: cloudinary config: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*Object, error) {
	params := uploader.UploadParams{
		Folder:         opts.Folder,
		ResourceType:   opts.ResourceType,
		Transformation: opts.Transformation,
	}
	if opts.FileName != "" {
		params.FilenameOverride = opts.FileName
	}

	res, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, res.Error.Message)
	}
	return &Object{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID, resourceType string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("storage: destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("storage: destroy %s: %s", publicID, res.Error.Message)
	}
	return nil
}
