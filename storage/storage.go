package storage

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
)

// StreamWriter collects the data of one key.  Close publishes it; Abort
// throws it away so readers never see a partial object.
type StreamWriter interface {
	io.Writer
	io.Closer
	Abort() error
}

// ErrStreamAborted is what an in-flight upload fails with after Abort.
var ErrStreamAborted = errors.New("stream aborted")

// ErrDoesNotExist is returned by Read for keys that were never written or
// have been deleted, whatever the backend.
var ErrDoesNotExist = errors.New("does not exist")

// System is the blob store the span catalog persists into.  Keys are slash
// separated paths.
type System interface {
	// Write stores data under key, replacing what was there.
	Write(ctx context.Context, key string, data []byte) error

	// BeginStream opens key for writing in pieces.  The data becomes
	// readable once the writer is closed.
	BeginStream(ctx context.Context, key string) (StreamWriter, error)

	// Read returns the data under key, or ErrDoesNotExist.
	Read(ctx context.Context, key string) ([]byte, error)

	// Delete removes key.  Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
