package client

import (
	"context"
	"errors"
	"log"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// ErrFileInactive is returned before any request is issued when the
// file's active flag is off.
var ErrFileInactive = errors.New("file is not active")

// DownloadManager is the read-only file list plus the authenticated
// blob fetch. After a successful download the caller re-lists so the
// updated download counter is visible.
type DownloadManager struct {
	*Manager[models.DownloadFile]
}

func NewDownloadManager(c *Client) *DownloadManager {
	files := NewManager(c, Config{Path: "/downloads", Name: "downloads"}, func(f models.DownloadFile) []string {
		return []string{f.OriginalName, f.MimeType}
	})
	return &DownloadManager{Manager: files}
}

// Download streams one file through the authenticated endpoint. An
// inactive file is refused locally, without touching the network.
func (m *DownloadManager) Download(ctx context.Context, file models.DownloadFile) ([]byte, string, error) {
	if !file.IsActive {
		return nil, "", ErrFileInactive
	}
	data, contentType, err := m.client.getBlob(ctx, "/downloads/"+file.StoredName)
	if err != nil {
		log.Printf("[downloads] fetch of %s failed: %v", file.StoredName, err)
		return nil, "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}
