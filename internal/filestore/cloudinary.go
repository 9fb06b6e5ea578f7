package filestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary stores uploads on Cloudinary, keyed by a generated public ID
// under a per-resource folder.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds a store from a cloudinary:// credentials URL.
func NewCloudinary(credentialsURL string) (*Cloudinary, error) {
	if credentialsURL == "" {
		return nil, fmt.Errorf("filestore: cloudinary credentials URL is empty")
	}
	cld, err := cloudinary.NewFromURL(credentialsURL)
	if err != nil {
		return nil, fmt.Errorf("filestore: init cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Put(ctx context.Context, folder, filename string, content io.Reader) (*Upload, error) {
	// The original filename is kept as a readable prefix; the uuid suffix
	// guarantees the key is unique without Overwrite semantics.
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	publicID := fmt.Sprintf("%s_%s", base, uuid.NewString())

	overwrite := false
	result, err := c.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		Overwrite:    &overwrite,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("filestore: upload %q: %w", filename, err)
	}

	url := result.SecureURL
	if url == "" {
		url = forceHTTPS(result.URL)
	}
	return &Upload{Key: result.PublicID, URL: url}, nil
}

func (c *Cloudinary) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     key,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("filestore: delete %q: %w", key, err)
	}
	return nil
}

func (c *Cloudinary) URL(key string) string {
	cloudName := c.cld.Config.Cloud.CloudName
	if cloudName == "" || key == "" {
		return ""
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", cloudName, key)
}

func forceHTTPS(in string) string {
	return strings.Replace(strings.TrimSpace(in), "http://", "https://", 1)
}
