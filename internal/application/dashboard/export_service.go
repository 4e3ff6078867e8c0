package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/report"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// ExportResult describes one finished report export.
type ExportResult struct {
	FileName string `json:"file_name"`
	Location string `json:"location"`
	Size     int64  `json:"size,omitempty"`
}

// ExportService drives the report export: it asks the analytical service
// for the rendered binary, derives the download file name from the
// upstream hint and the company name, and streams the content into the
// configured sink. The artifact handle is released on every path, success
// or failure.
type ExportService struct {
	api       report.ExportAPI
	companies *CompanyService
	sink      ArtifactSink
	backend   string
	logger    *zap.Logger
	metrics   *telemetry.DashboardMetrics
}

// NewExportService creates a new export service. backend names the sink
// implementation for metrics labeling ("local", "s3", "stub"); metrics may
// be nil.
func NewExportService(api report.ExportAPI, companies *CompanyService, sink ArtifactSink, backend string, logger *zap.Logger, metrics *telemetry.DashboardMetrics) *ExportService {
	return &ExportService{
		api:       api,
		companies: companies,
		sink:      sink,
		backend:   backend,
		logger:    logger,
		metrics:   metrics,
	}
}

// Export produces the printable report for one (company, scenario) pair
// and returns where the sink stored it
func (s *ExportService) Export(ctx context.Context, companyID, scenarioID uuid.UUID) (*ExportResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "export")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID,
		telemetry.SpanAttrScenarioID, scenarioID,
		telemetry.SpanAttrExportBackend, s.backend,
	)

	comp, err := s.companies.Get(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	start := time.Now()
	artifact, err := s.api.Export(ctx, companyID, scenarioID)
	if err != nil {
		s.recordOutcome(ctx, telemetry.OutcomeError)
		telemetry.RecordError(span, err)
		return nil, err
	}
	defer artifact.Content.Close()

	fileName := report.FileName(comp.Name, artifact.NameHint)
	telemetry.SetAttributes(span, telemetry.SpanAttrFileName, fileName)

	location, err := s.sink.Save(ctx, fileName, artifact.Content, artifact.ContentType, artifact.Size)
	if err != nil {
		s.recordOutcome(ctx, telemetry.OutcomeError)
		telemetry.RecordError(span, err)
		s.logger.Error("report save failed",
			zap.String("company_id", companyID.String()),
			zap.String("file_name", fileName),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", shared.ErrExportFailed, err)
	}

	s.recordOutcome(ctx, telemetry.OutcomeOK)
	telemetry.SetAttributes(span, telemetry.SpanAttrLocation, location)
	s.logger.Info("report exported",
		zap.String("company_id", companyID.String()),
		zap.String("scenario_id", scenarioID.String()),
		zap.String("file_name", fileName),
		zap.Duration("took", time.Since(start)))

	result := &ExportResult{FileName: fileName, Location: location}
	if artifact.Size > 0 {
		result.Size = artifact.Size
	}
	return result, nil
}

func (s *ExportService) recordOutcome(ctx context.Context, outcome telemetry.Outcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordExport(ctx, s.backend, outcome)
}
