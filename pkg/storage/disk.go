// Package storage provides a filesystem abstraction over the places
// uploaded files can live.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem, served back under a public URL prefix
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	m, _ := storage.New(storage.Options{LocalRoot: "uploads", LocalURL: "/uploads"})
//	disk := m.Default()
//	_ = disk.Put("posts/photo.jpg", data)
//	url := disk.URL("posts/photo.jpg")
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"time"
)

// Disk is the filesystem driver interface. Every driver must implement this.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}

// Filename builds a collision-resistant filename for an uploaded file:
// millisecond timestamp, a random suffix, and the original extension.
func Filename(original string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), suffix, filepath.Ext(original))
}
