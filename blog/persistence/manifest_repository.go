package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pictify-io/blogs/blog/domain"
)

var _ domain.ManifestRepository = (*FileManifestRepository)(nil)

// FileManifestRepository implements domain.ManifestRepository on a JSON file
// holding an array of post records.
type FileManifestRepository struct {
	path string
}

// NewManifestRepository creates a FileManifestRepository for the file at path
func NewManifestRepository(path string) *FileManifestRepository {
	return &FileManifestRepository{
		path: path,
	}
}

// Load reads and parses the whole manifest
func (r *FileManifestRepository) Load(ctx context.Context) ([]*domain.PostRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var records []*domain.PostRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidManifest, r.path, err)
	}

	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("%w: %s: entry %d is null", domain.ErrInvalidManifest, r.path, i)
		}
	}

	return records, nil
}

// Save writes the manifest with a two-space indent.
// The file is replaced with a rename so readers never see a partial write.
func (r *FileManifestRepository) Save(ctx context.Context, records []*domain.PostRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []*domain.PostRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp manifest: %w", err)
	}
	tmpPath := tmp.Name()

	mode := os.FileMode(0644)
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set manifest permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp manifest: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp manifest: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}

	return nil
}
