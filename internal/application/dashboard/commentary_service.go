package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/commentary"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// CommentaryService keeps the AI commentary view of the currently selected
// (company, scenario) pair. Loads are fail-soft: commentary decorates the
// dashboard, so a failed fetch resolves to the empty map and the numbers
// keep rendering. Publication is fenced by the selection generation; a
// response that resolves after the selection moved on is discarded.
type CommentaryService struct {
	api       commentary.CommentaryAPI
	store     *cache.Store
	selection *Selection
	logger    *zap.Logger
	metrics   *telemetry.DashboardMetrics

	mu      sync.RWMutex
	current commentary.Map
	gen     uint64
}

// NewCommentaryService creates a new commentary service. metrics may be
// nil.
func NewCommentaryService(api commentary.CommentaryAPI, store *cache.Store, selection *Selection, logger *zap.Logger, metrics *telemetry.DashboardMetrics) *CommentaryService {
	return &CommentaryService{
		api:       api,
		store:     store,
		selection: selection,
		logger:    logger,
		metrics:   metrics,
		current:   commentary.Empty(),
	}
}

// ForPair returns the stored commentary for an explicit pair, resolving to
// the empty map on any failure. The published selection view is untouched.
func (s *CommentaryService) ForPair(ctx context.Context, companyID, scenarioID uuid.UUID) commentary.Map {
	m, err := cache.Fetch(ctx, s.store, cache.CommentaryKey(companyID, scenarioID), func(ctx context.Context) (commentary.Map, error) {
		return s.api.Fetch(ctx, companyID, scenarioID)
	})
	if err != nil {
		s.logger.Debug("commentary fetch failed, falling back to empty",
			zap.String("company_id", companyID.String()),
			zap.String("scenario_id", scenarioID.String()),
			zap.Error(err))
		return commentary.Empty()
	}
	return m
}

// Hydrate loads the stored commentary for the current selection and
// publishes it, then returns the map now associated with the live
// selection. A load that outlives its selection is discarded.
func (s *CommentaryService) Hydrate(ctx context.Context) commentary.Map {
	companyID, scenarioID, gen, ok := s.selection.Current()
	if !ok || scenarioID == uuid.Nil {
		return commentary.Empty()
	}

	m := s.ForPair(ctx, companyID, scenarioID)
	if !s.publish(m, gen) {
		s.logger.Debug("commentary load outlived its selection, discarded",
			zap.String("company_id", companyID.String()),
			zap.String("scenario_id", scenarioID.String()))
	}
	return s.Current()
}

// Generate asks the narrative engine to recompute the commentary for the
// current selection. The returned notice tells the operator what happened;
// on failure the published view is left untouched.
func (s *CommentaryService) Generate(ctx context.Context) (commentary.Map, Notice) {
	ctx, span := telemetry.StartServiceSpan(ctx, "commentary", "generate")
	defer span.End()

	companyID, scenarioID, gen, ok := s.selection.Current()
	if !ok || scenarioID == uuid.Nil {
		return commentary.Empty(), errorNotice("Select a company and scenario first")
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID,
		telemetry.SpanAttrScenarioID, scenarioID,
	)

	m, err := s.api.Generate(ctx, companyID, scenarioID)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Warn("commentary generation failed",
			zap.String("company_id", companyID.String()),
			zap.String("scenario_id", scenarioID.String()),
			zap.Error(err))
		return s.Current(), errorNotice("Commentary generation failed, please retry")
	}

	// The engine persisted a fresh map; drop the cached copy so the next
	// hydrate rereads it.
	s.store.Invalidate(cache.CommentaryKey(companyID, scenarioID))
	s.publish(m, gen)
	if s.metrics != nil {
		s.metrics.RecordCommentaryGenerated(ctx, companyID)
	}

	if len(m) == 0 {
		return m, infoNotice("The engine returned no commentary for this scenario")
	}
	s.logger.Info("commentary generated",
		zap.String("company_id", companyID.String()),
		zap.String("scenario_id", scenarioID.String()),
		zap.Int("sections", len(m)))
	return m, successNotice("Commentary generated")
}

// Current returns the commentary belonging to the live selection. A pair
// that was never hydrated, or whose load was discarded, reads as empty.
func (s *CommentaryService) Current() commentary.Map {
	live := s.selection.Generation()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gen != live {
		return commentary.Empty()
	}
	return s.current
}

// publish stores m as the view for gen unless the selection moved on. A
// publication that slips past a concurrent selection change is harmless:
// Current compares generations again on every read.
func (s *CommentaryService) publish(m commentary.Map, gen uint64) bool {
	if s.selection.Generation() != gen {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = m
	s.gen = gen
	return true
}
