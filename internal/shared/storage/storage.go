package storage

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// FileInfo describes a stored object.
type FileInfo struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

// Store persists uploaded files. Paths are slash separated and relative.
type Store interface {
	Save(ctx context.Context, path string, file io.Reader, contentType string) (*FileInfo, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename strips directories and characters outside [a-zA-Z0-9._-].
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
