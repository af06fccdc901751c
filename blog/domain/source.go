package domain

import (
	"context"
)

// SourceRepository defines the interface for reading post bodies (e.g., from a local directory).
// This allows the application to be decoupled from a specific implementation.
type SourceRepository interface {
	GetFileContents(ctx context.Context, fileName string) ([]byte, error)
}
