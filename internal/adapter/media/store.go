// Package media implements a local-disk media store.
//
// Objects are content-addressed: the storage id is the hex SHA-256 of the
// payload plus an extension derived from the content type, so re-uploading
// the same bytes is naturally idempotent.
package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/socialblog/backend/internal/domain"
)

// Store keeps media objects as flat files under a root directory and
// serves them via a public base URL.
type Store struct {
	rootDir  string
	baseURL  string
	maxBytes int64
}

// New creates a store rooted at rootDir. The directory is created if
// missing.
func New(rootDir, baseURL string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{
		rootDir:  rootDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Put stores the payload and returns its reference. Content types
// outside image/* and video/* are rejected with domain.ErrForbidden;
// payloads over the size limit fail with domain.ErrValidation.
func (s *Store) Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.SupportedMediaType(contentType) {
		return nil, fmt.Errorf("content type %q: %w", contentType, domain.ErrForbidden)
	}

	// Hash while spooling to a temp file so oversized payloads never land
	// under their final name.
	tmp, err := os.CreateTemp(s.rootDir, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(tmp, h), io.LimitReader(data, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("spool media: %w", err)
	}
	if n > s.maxBytes {
		return nil, fmt.Errorf("media exceeds %d bytes: %w", s.maxBytes, domain.ErrValidation)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	storageID := hex.EncodeToString(h.Sum(nil)) + extensionFor(contentType)
	final := filepath.Join(s.rootDir, storageID)

	if err := os.Rename(tmp.Name(), final); err != nil {
		return nil, fmt.Errorf("commit media: %w", err)
	}

	return &domain.MediaRef{
		StorageID: storageID,
		URL:       s.baseURL + "/" + storageID,
	}, nil
}

// Delete removes a stored object. Deleting an unknown id is a no-op:
// release paths run after the owning entity already switched references.
func (s *Store) Delete(ctx context.Context, storageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Reject anything that could escape the root.
	if storageID == "" || storageID != filepath.Base(storageID) {
		return fmt.Errorf("storage id %q: %w", storageID, domain.ErrValidation)
	}

	err := os.Remove(filepath.Join(s.rootDir, storageID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media %s: %w", storageID, err)
	}
	return nil
}

func extensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	// mime returns extensions unordered; prefer the common ones.
	for _, preferred := range []string{".jpg", ".png", ".gif", ".webp", ".mp4", ".webm"} {
		for _, e := range exts {
			if e == preferred {
				return e
			}
		}
	}
	return exts[0]
}
