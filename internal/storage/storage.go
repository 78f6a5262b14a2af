package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files and resolves them back from their public
// URL. Implementations must generate collision-free names via a FileNamer
// and never overwrite existing files.
type Storage interface {
	// Save writes the reader's content under the given filename and
	// returns the public URL the file is served at.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes the file behind a locally hosted URL. Removing a
	// missing file is not an error.
	Remove(ctx context.Context, url string) error
	// IsLocal reports whether the URL points at a file this store hosts.
	IsLocal(url string) bool
}
