package storage

import "context"

// StorageService defines the interface for blob-storage operations.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns the stored
	// public ID and a stable download URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID string, url string, err error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(publicID string) string
}
