package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/report"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// ReportService assembles the on-screen report view for one
// (company, scenario) pair: the analysis numbers laid out by fiscal year
// with placeholders where data is missing, interleaved with the stored
// commentary. Commentary stays decorative here too; a report never fails
// because its narrative could not be loaded.
type ReportService struct {
	companies  *CompanyService
	analysis   *AnalysisService
	commentary *CommentaryService
}

// NewReportService creates a new report service
func NewReportService(companies *CompanyService, analysis *AnalysisService, commentary *CommentaryService) *ReportService {
	return &ReportService{
		companies:  companies,
		analysis:   analysis,
		commentary: commentary,
	}
}

// Assemble builds the report for the pair
func (s *ReportService) Assemble(ctx context.Context, companyID, scenarioID uuid.UUID) (*report.Report, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "assemble")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID,
		telemetry.SpanAttrScenarioID, scenarioID,
	)

	comp, err := s.companies.Get(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	snap, err := s.analysis.Snapshot(ctx, companyID, scenarioID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	comments := s.commentary.ForPair(ctx, companyID, scenarioID)

	return report.Build(comp.Name, snap, comments), nil
}
