// Package storage persists uploaded files under the public content directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFileFormat = errors.New("invalid file format. only .jpg, .jpeg, .png, .gif, .webp, .svg are allowed")
	ErrFileSizeExceeded  = errors.New("file size exceeds limit")
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

// DiskStore writes uploads into Dir and exposes them under URLPrefix
type DiskStore struct {
	Dir       string
	URLPrefix string
	MaxBytes  int64
	now       func() time.Time
}

// NewDiskStore creates the upload directory if needed
func NewDiskStore(dir, urlPrefix string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &DiskStore{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/"), MaxBytes: maxBytes, now: time.Now}, nil
}

// SaveImage stores an uploaded image as "<unix millis>-<original name>" and
// returns its public URL. Two uploads of the same name in the same
// millisecond would collide.
func (s *DiskStore) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if s.MaxBytes > 0 && fileHeader.Size > s.MaxBytes {
		return "", ErrFileSizeExceeded
	}
	name := sanitizeFilename(fileHeader.Filename)
	if !allowedImageExts[strings.ToLower(filepath.Ext(name))] {
		return "", ErrInvalidFileFormat
	}

	fileName := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + name
	filePath := filepath.Join(s.Dir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return s.URLPrefix + "/" + fileName, nil
}

// Remove deletes the file behind a URL returned by SaveImage. URLs outside
// URLPrefix are ignored, and a file that is already gone is not an error.
func (s *DiskStore) Remove(publicURL string) error {
	prefix := s.URLPrefix + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	name := path.Base(strings.TrimPrefix(publicURL, prefix))
	if name == "." || name == "/" || name == ".." {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload %s: %w", name, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20, r == '/', r == '?', r == '#', r == '%':
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
