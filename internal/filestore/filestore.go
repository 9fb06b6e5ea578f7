// Package filestore uploads menu imagery to an external object host and
// resolves stored keys back to serveable URLs.
package filestore

import (
	"context"
	"io"
)

// Upload holds the stored object reference returned after a successful upload.
type Upload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Store interface {
	// Put uploads the content under the given folder and returns its key
	// and public URL. The filename only informs the generated key.
	Put(ctx context.Context, folder, filename string, content io.Reader) (*Upload, error)
	Delete(ctx context.Context, key string) error
	// URL resolves a stored key to its public HTTPS URL. Unknown keys still
	// produce a well-formed URL; the host serves a 404 for them.
	URL(key string) string
}
