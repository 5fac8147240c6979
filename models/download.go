package models

import "time"

// DownloadFile is a downloadable file record from the store API.
type DownloadFile struct {
	ID            uint      `json:"id"`
	StoredName    string    `json:"stored_name"`
	OriginalName  string    `json:"original_name"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	DownloadCount int       `json:"download_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
