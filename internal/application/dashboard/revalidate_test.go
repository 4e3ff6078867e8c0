package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
)

// revalidateProbe warms one cache key with a counting loader and reports
// whether a later fetch hit the cache or reloaded.
type revalidateProbe struct {
	store *cache.Store
	key   cache.Key
	loads int
}

func newRevalidateProbe(t *testing.T, store *cache.Store, key cache.Key) *revalidateProbe {
	p := &revalidateProbe{store: store, key: key}
	p.fetch(t)
	return p
}

func (p *revalidateProbe) fetch(t *testing.T) {
	t.Helper()
	_, err := cache.Fetch(context.Background(), p.store, p.key, func(context.Context) (string, error) {
		p.loads++
		return "value", nil
	})
	require.NoError(t, err)
}

func (p *revalidateProbe) reloaded(t *testing.T) bool {
	t.Helper()
	before := p.loads
	p.fetch(t)
	return p.loads > before
}

func TestRevalidator_ScenarioScope(t *testing.T) {
	store := cache.NewStore()
	companyID, scenarioID := uuid.New(), uuid.New()
	siblingID := uuid.New()

	pairAnalysis := newRevalidateProbe(t, store, cache.AnalysisKey(companyID, scenarioID))
	pairCommentary := newRevalidateProbe(t, store, cache.CommentaryKey(companyID, scenarioID))
	sibling := newRevalidateProbe(t, store, cache.AnalysisKey(companyID, siblingID))
	list := newRevalidateProbe(t, store, cache.CompanyListKey())

	NewRevalidator(store, zap.NewNop()).Revalidate(companyID, scenarioID)

	assert.True(t, pairAnalysis.reloaded(t))
	assert.True(t, pairCommentary.reloaded(t))
	assert.False(t, sibling.reloaded(t), "the sibling scenario is outside the scope")
	assert.False(t, list.reloaded(t))
}

func TestRevalidator_CompanyScope(t *testing.T) {
	store := cache.NewStore()
	companyID, otherID := uuid.New(), uuid.New()

	detail := newRevalidateProbe(t, store, cache.CompanyDetailKey(companyID))
	analysis := newRevalidateProbe(t, store, cache.AnalysisKey(companyID, uuid.New()))
	other := newRevalidateProbe(t, store, cache.CompanyDetailKey(otherID))
	list := newRevalidateProbe(t, store, cache.CompanyListKey())

	NewRevalidator(store, zap.NewNop()).Revalidate(companyID, uuid.Nil)

	assert.True(t, detail.reloaded(t))
	assert.True(t, analysis.reloaded(t), "everything beneath the company reloads")
	assert.False(t, other.reloaded(t))
	assert.False(t, list.reloaded(t), "the directory itself is untouched by a company-scoped signal")
}

func TestRevalidator_GlobalScope(t *testing.T) {
	store := cache.NewStore()

	list := newRevalidateProbe(t, store, cache.CompanyListKey())
	detail := newRevalidateProbe(t, store, cache.CompanyDetailKey(uuid.New()))
	analysis := newRevalidateProbe(t, store, cache.AnalysisKey(uuid.New(), uuid.New()))

	NewRevalidator(store, zap.NewNop()).Revalidate(uuid.Nil, uuid.Nil)

	assert.True(t, list.reloaded(t))
	assert.True(t, detail.reloaded(t))
	assert.True(t, analysis.reloaded(t))
}
