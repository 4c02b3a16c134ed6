package document

import (
	"context"
	"fmt"
	"os"
)

// Source yields a raw override document and its format.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, string, error)
}

// FileSource reads an override document from the local filesystem.
type FileSource struct {
	Path string
}

// Name identifies the source in logs and errors.
func (s FileSource) Name() string {
	return s.Path
}

// Fetch reads the file; the format comes from its extension.
func (s FileSource) Fetch(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	format, err := FormatFromPath(s.Path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, "", fmt.Errorf("read document %s: %w", s.Path, err)
	}

	return data, format, nil
}
