package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	dashboardapp "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
)

// Ensure LocalArtifactSink implements ArtifactSink
var _ dashboardapp.ArtifactSink = (*LocalArtifactSink)(nil)

// LocalArtifactSink writes export artifacts to a directory on disk.
// Writes go through a temp file and a rename so a crash mid-download
// never leaves a truncated file under the final name.
type LocalArtifactSink struct {
	dir    string
	logger *zap.Logger
}

// LocalArtifactSinkOption is a functional option for configuring LocalArtifactSink
type LocalArtifactSinkOption func(*LocalArtifactSink)

// WithLocalLogger sets a custom logger for LocalArtifactSink
func WithLocalLogger(logger *zap.Logger) LocalArtifactSinkOption {
	return func(s *LocalArtifactSink) {
		s.logger = logger
	}
}

// NewLocalArtifactSink creates a sink rooted at dir, creating it if needed
func NewLocalArtifactSink(dir string, opts ...LocalArtifactSinkOption) (*LocalArtifactSink, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	sink := &LocalArtifactSink{
		dir:    dir,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sink)
	}
	return sink, nil
}

// Save writes the artifact to dir/fileName and returns the absolute path
func (s *LocalArtifactSink) Save(ctx context.Context, fileName string, content io.Reader, contentType string, size int64) (string, error) {
	if fileName == "" {
		return "", errors.New("file name is required")
	}
	// The name was derived upstream, but never trust it with the filesystem
	if strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
		return "", fmt.Errorf("file name %q must not contain path separators", fileName)
	}

	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to flush artifact: %w", err)
	}

	target := filepath.Join(s.dir, fileName)
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to move artifact into place: %w", err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}

	s.logger.Debug("Export artifact saved",
		zap.String("path", abs),
		zap.Int64("size", size))

	return abs, nil
}
