// Package storage keeps uploaded files outside the database.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUploadFailed wraps provider-side rejections
var ErrUploadFailed = errors.New("storage: upload failed")

// Resource types understood by the stores
const (
	ResourceRaw   = "raw"
	ResourceImage = "image"
)

// UploadOptions describe where and how a file is stored
type UploadOptions struct {
	Folder         string
	FileName       string
	ResourceType   string
	Transformation string
}

// Object is a stored file: a retrievable URL plus the handle used to delete it
type Object struct {
	URL      string
	PublicID string
}

// BlobStore is implemented by Cloudinary and the local-disk store
type BlobStore interface {
	Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*Object, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}
