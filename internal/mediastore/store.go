// Package mediastore persists uploaded files to local disk and hands back
// the public paths stored on news and media documents.
package mediastore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind selects the subdirectory an upload is stored under.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
	KindMedia Kind = "media"
)

// Store writes uploaded files below a single root directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir, creating the subdirectories for
// every media kind.
func NewStore(dir string) (*Store, error) {
	for _, kind := range []Kind{KindImage, KindVideo, KindMedia} {
		if err := os.MkdirAll(filepath.Join(dir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("create media directory: %w", err)
		}
	}

	return &Store{root: dir}, nil
}

// Save stores a single uploaded file and returns its public path, for
// example "/images/<uuid>.jpg".
func (s *Store) Save(file *multipart.FileHeader, kind Kind) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.root, string(kind), name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return "/" + string(kind) + "/" + name, nil
}

// Remove deletes the file behind a public path. A missing file is not an
// error; the document may already point elsewhere.
func (s *Store) Remove(publicPath string) error {
	if publicPath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(publicPath, "/"))))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
