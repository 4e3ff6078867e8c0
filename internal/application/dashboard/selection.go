package dashboard

import (
	"sync"

	"github.com/google/uuid"
)

// Selection tracks the (company, scenario) pair the dashboard currently
// works on. Every change bumps a generation counter; an asynchronous load
// captures the generation when it starts and checks it before publishing,
// so a response that arrives after the operator moved on is discarded
// instead of overwriting the newer selection's view.
//
// A selection may carry a company without a scenario: that is how a
// company with no budget scenarios is represented.
type Selection struct {
	mu         sync.RWMutex
	companyID  uuid.UUID
	scenarioID uuid.UUID
	gen        uint64
	set        bool
}

// NewSelection returns an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Set records the active pair and returns the generation it belongs to.
// Re-setting the identical pair keeps the generation, so loads already in
// flight for it stay publishable.
func (s *Selection) Set(companyID, scenarioID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set && s.companyID == companyID && s.scenarioID == scenarioID {
		return s.gen
	}
	s.companyID = companyID
	s.scenarioID = scenarioID
	s.set = true
	s.gen++
	return s.gen
}

// Clear empties the selection. In-flight loads for the previous pair will
// fail their generation check and be discarded.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// ClearIfCompany clears the selection when it points at the given company.
// Called after that company is deleted.
func (s *Selection) ClearIfCompany(companyID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set || s.companyID != companyID {
		return
	}
	s.clearLocked()
}

func (s *Selection) clearLocked() {
	s.companyID = uuid.Nil
	s.scenarioID = uuid.Nil
	s.set = false
	s.gen++
}

// Current returns the active pair and the generation it belongs to. ok is
// false when nothing is selected.
func (s *Selection) Current() (companyID, scenarioID uuid.UUID, gen uint64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companyID, s.scenarioID, s.gen, s.set
}

// Generation returns the live generation counter
func (s *Selection) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
