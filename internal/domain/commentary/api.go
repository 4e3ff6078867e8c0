package commentary

import (
	"context"

	"github.com/google/uuid"
)

// CommentaryAPI defines the port for the narrative-engine endpoints.
// Fetch and Generate address the same (company, scenario) scope but are
// independent operations with different failure policies, so they stay
// separate methods.
type CommentaryAPI interface {
	// Fetch returns the previously generated commentary for a scope
	Fetch(ctx context.Context, companyID, scenarioID uuid.UUID) (Map, error)

	// Generate computes and stores fresh commentary, returning the full
	// updated map. An empty map is a valid outcome: the narrative engine
	// produced nothing.
	Generate(ctx context.Context, companyID, scenarioID uuid.UUID) (Map, error)
}
