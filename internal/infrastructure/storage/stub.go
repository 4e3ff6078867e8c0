package storage

import (
	"context"
	"errors"
	"io"

	dashboardapp "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
)

// StubArtifactSink is a placeholder sink that consumes and discards
// artifacts. Use it in development when no storage backend is available;
// the export flow still runs end to end.
type StubArtifactSink struct {
	// BaseURL is used to fabricate the returned location.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string
}

// NewStubArtifactSink creates a new StubArtifactSink
func NewStubArtifactSink() *StubArtifactSink {
	return &StubArtifactSink{
		BaseURL: "https://storage.example.com",
	}
}

// Ensure StubArtifactSink implements ArtifactSink
var _ dashboardapp.ArtifactSink = (*StubArtifactSink)(nil)

// Save drains the content and returns a fabricated location
func (s *StubArtifactSink) Save(ctx context.Context, fileName string, content io.Reader, contentType string, size int64) (string, error) {
	if fileName == "" {
		return "", errors.New("file name is required")
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	return s.BaseURL + "/exports/" + fileName, nil
}
