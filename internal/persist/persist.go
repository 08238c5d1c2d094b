// internal/persist/persist.go
package persist

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the namespace has never been written.
var ErrNotFound = errors.New("snapshot not found")

// BlobStore is the durable storage boundary: an opaque blob keyed by a fixed
// namespace string, read once at startup and overwritten on every change to
// the persisted subset. Writes are best-effort; nothing retries.
type BlobStore interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, data []byte) error
}
