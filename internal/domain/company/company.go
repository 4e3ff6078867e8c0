package company

import (
	"strings"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// SectorCode classifies a company into one of the supported industry sectors.
// The numeric values are fixed by the analytical service and drive which
// reclassification template it applies.
type SectorCode int

const (
	SectorIndustry     SectorCode = 1
	SectorCommerce     SectorCode = 2
	SectorServices     SectorCode = 3
	SectorConstruction SectorCode = 4
	SectorAgriculture  SectorCode = 5
	SectorOther        SectorCode = 6
)

// IsValid returns true if the sector code is one of the supported values
func (s SectorCode) IsValid() bool {
	return s >= SectorIndustry && s <= SectorOther
}

// Company is the directory entry for one analyzed company.
// The analytical service owns the record; this layer holds a read-mostly
// cached copy that is re-fetched in full after every mutation.
type Company struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	TaxID  string     `json:"tax_id,omitempty"`
	Sector SectorCode `json:"sector"`
	Notes  string     `json:"notes,omitempty"`
}

// Input carries the user-editable fields of a company create or update.
type Input struct {
	Name   string     `json:"name"`
	TaxID  string     `json:"tax_id"`
	Sector SectorCode `json:"sector"`
	Notes  string     `json:"notes"`
}

// Validate rejects malformed input locally, before any request is sent
func (in Input) Validate() error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := validateTaxID(in.TaxID); err != nil {
		return err
	}
	if !in.Sector.IsValid() {
		return shared.NewDomainError("INVALID_SECTOR", "Sector code must be between 1 and 6")
	}
	if len(in.Notes) > 2000 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 2000 characters")
	}
	return nil
}

// Validation functions

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

func validateTaxID(taxID string) error {
	if taxID == "" {
		return nil
	}
	if len(taxID) > 50 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 50 characters")
	}
	for _, r := range taxID {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return shared.NewDomainError("INVALID_TAX_ID", "Tax ID can only contain letters and digits")
		}
	}
	return nil
}
