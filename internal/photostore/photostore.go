// Package photostore keeps check-in photos out of the database: the
// attendance ledger stores only the opaque ref returned by Save.
package photostore

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	photostoreerrors "github.com/Urbancode-IT/INOUT-sub000/internal/photostore/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=photostore.go -destination=mock/photostore_mock.go -package=mock
type Store interface {
	Save(data []byte, originalName string) (string, error)
	Read(ref string) ([]byte, error)
}

type diskStore struct {
	dir string
}

func NewDiskStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Save(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", photostoreerrors.ErrEmptyPhoto
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensionFor(contentType)
	if !ok {
		return "", photostoreerrors.ErrUnsupportedPhotoType
	}
	_ = originalName // deliberately ignored, refs never leak client names

	ref := fmt.Sprintf("%s/%s%s", time.Now().UTC().Format("2006/01/02"), uuid.NewString(), ext)
	path := filepath.Join(s.dir, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *diskStore) Read(ref string) ([]byte, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(ref))
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, photostoreerrors.ErrPhotoNotFound
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, photostoreerrors.ErrPhotoNotFound
		}
		return nil, err
	}
	return data, nil
}

func extensionFor(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	default:
		return "", false
	}
}
