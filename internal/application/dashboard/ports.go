package dashboard

import (
	"context"
	"io"
)

// ArtifactSink persists a finished export artifact under a user-facing
// file name and returns the location the caller can hand to the user:
// a filesystem path for local storage, a presigned URL for object storage.
type ArtifactSink interface {
	// Save writes the artifact content. size is a hint and may be -1 when
	// the upstream did not announce a length. Save must consume content
	// fully but never closes it; the caller owns the handle.
	Save(ctx context.Context, fileName string, content io.Reader, contentType string, size int64) (string, error)
}
