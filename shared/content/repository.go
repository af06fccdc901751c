package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pictify-io/blogs/blog/domain"
)

// DirectorySourceRepository is an implementation of domain.SourceRepository that reads
// post bodies from a local content directory.
type DirectorySourceRepository struct {
	dir string
}

// NewDirectorySourceRepository creates a new DirectorySourceRepository rooted at dir.
func NewDirectorySourceRepository(dir string) domain.SourceRepository {
	return &DirectorySourceRepository{
		dir: dir,
	}
}

// GetFileContents reads the named file from the content directory.
// Names must stay inside the directory.
func (d *DirectorySourceRepository) GetFileContents(ctx context.Context, fileName string) ([]byte, error) {
	op := fmt.Sprintf("reading %s from %s", fileName, d.dir)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("content: %s: %w", op, err)
	}

	if fileName == "" || !filepath.IsLocal(fileName) {
		return nil, fmt.Errorf("content: %s: file name must be a relative path inside the content directory", op)
	}

	data, err := os.ReadFile(filepath.Join(d.dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("content: %s failed: %w", op, err)
	}

	return data, nil
}
