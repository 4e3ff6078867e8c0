package storage

import (
	"fmt"

	"go.uber.org/zap"

	dashboardapp "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	infraconfig "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/config"
)

// NewSink creates the artifact sink selected by configuration
func NewSink(cfg *infraconfig.StorageConfig, logger *zap.Logger) (dashboardapp.ArtifactSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "local":
		sink, err := NewLocalArtifactSink(cfg.Dir, WithLocalLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create local artifact sink: %w", err)
		}
		logger.Info("using local artifact storage", zap.String("dir", cfg.Dir))
		return sink, nil

	case "s3":
		sink, err := NewS3ArtifactSink(cfg, WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 artifact sink: %w", err)
		}
		logger.Info("using S3 artifact storage", zap.String("bucket", cfg.Bucket))
		return sink, nil

	case "stub":
		logger.Warn("using stub artifact storage, export files are discarded")
		return NewStubArtifactSink(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
