package models

import "io"

// FileUpload is an image file carried through a multipart write.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}
