package report

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// ExportArtifact is the binary report as delivered by the analytical
// service. Content must be closed by the consumer on every path, success
// or failure, so the underlying connection is released.
type ExportArtifact struct {
	Content     io.ReadCloser
	ContentType string
	// NameHint is the raw Content-Disposition header, empty when the
	// server sent none.
	NameHint string
	Size     int64
}

// ExportAPI defines the port for the report-export read. The call may wait
// on heavy backend computation, so implementations budget a conspicuously
// longer timeout than interactive reads.
type ExportAPI interface {
	// Export requests the rendered report for one (company, scenario) pair
	Export(ctx context.Context, companyID, scenarioID uuid.UUID) (*ExportArtifact, error)
}
