package store

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Load when nothing has been saved yet.
// Callers fall back to the seed document.
var ErrNoDocument = errors.New("no document stored")

// Storage persists the ledger document as one opaque blob. Save always
// overwrites the previous blob in full; there are no partial writes,
// transactions or schema migrations at this layer.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
