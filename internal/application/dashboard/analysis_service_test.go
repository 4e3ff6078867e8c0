package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
)

func TestAnalysisService_SnapshotCachesPerPair(t *testing.T) {
	api := &mockAnalysisAPI{}
	companyID, scenarioID := uuid.New(), uuid.New()
	api.snap = sampleSnapshot(companyID, scenarioID)
	svc := NewAnalysisService(api, cache.NewStore())
	ctx := context.Background()

	first, err := svc.Snapshot(ctx, companyID, scenarioID)
	require.NoError(t, err)
	second, err := svc.Snapshot(ctx, companyID, scenarioID)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, api.callCount())

	_, err = svc.Snapshot(ctx, companyID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, api.callCount(), "each pair is cached independently")
}

func TestAnalysisService_FailureIsNotCached(t *testing.T) {
	api := &mockAnalysisAPI{err: assert.AnError}
	companyID, scenarioID := uuid.New(), uuid.New()
	svc := NewAnalysisService(api, cache.NewStore())
	ctx := context.Background()

	_, err := svc.Snapshot(ctx, companyID, scenarioID)
	require.Error(t, err)

	api.mu.Lock()
	api.err = nil
	api.snap = sampleSnapshot(companyID, scenarioID)
	api.mu.Unlock()

	snap, err := svc.Snapshot(ctx, companyID, scenarioID)
	require.NoError(t, err, "a failed load must not poison the cache")
	assert.NotNil(t, snap)
	assert.Equal(t, 2, api.callCount())
}
