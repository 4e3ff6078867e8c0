package company

import (
	"context"

	"github.com/google/uuid"
)

// CompanyAPI defines the port for the remote company directory.
// This interface follows the Ports & Adapters pattern - it's defined in the
// domain layer, and the HTTP implementation lives in the infrastructure layer.
type CompanyAPI interface {
	// List returns every company visible to the current credential
	List(ctx context.Context) ([]Company, error)

	// Create registers a new company and returns the stored record
	Create(ctx context.Context, in Input) (*Company, error)

	// Update replaces the mutable fields of an existing company
	Update(ctx context.Context, id uuid.UUID, in Input) (*Company, error)

	// Delete removes a company and everything recorded under it
	Delete(ctx context.Context, id uuid.UUID) error
}
