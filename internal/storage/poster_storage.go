// Package storage is the poster object-store collaborator. Uploading is an
// independently retryable pre-step of proposal creation: the client uploads
// first, gets back a view URL, and only then builds the proposal. An upload
// whose proposal never materializes is an orphan, cleaned up out of band.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type PosterStorage interface {
	// Upload stores the object and returns its id.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	// ViewURL returns the absolute URL serving the object.
	ViewURL(id string) string
}

// LocalPosterStorage writes posters under a directory served as static
// files. Object ids are fresh uuids with the original extension kept so the
// file server picks the right content type.
type LocalPosterStorage struct {
	dir     string
	baseURL string
}

func NewLocalPosterStorage(dir, baseURL string) (*LocalPosterStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create poster dir: %w", err)
	}
	return &LocalPosterStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalPosterStorage) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	id := uuid.New().String() + filepath.Ext(filename)

	f, err := os.Create(filepath.Join(s.dir, id))
	if err != nil {
		return "", fmt.Errorf("create poster file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write poster file: %w", err)
	}
	return id, nil
}

func (s *LocalPosterStorage) ViewURL(id string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, id)
}
