package simulator

import (
	"sync"
	"time"

	"github.com/kilianp07/hybridpark/core/model"
)

// PlanSource exposes the current day plan.
type PlanSource interface {
	Plan() model.DayPlan
}

// Store keeps the latest plan produced by a Simulator. Regenerate serialises
// access to the simulator's noise source, which is not safe for concurrent use.
type Store struct {
	sim *Simulator

	genMu sync.Mutex
	mu    sync.RWMutex
	plan  model.DayPlan
}

// NewStore creates a Store and generates its first plan.
func NewStore(sim *Simulator, now time.Time) *Store {
	s := &Store{sim: sim}
	s.Regenerate(now)
	return s
}

// Plan returns the latest plan.
func (s *Store) Plan() model.DayPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

// Regenerate runs the simulator once and replaces the stored plan.
func (s *Store) Regenerate(now time.Time) model.DayPlan {
	s.genMu.Lock()
	plan := s.sim.Run(now)
	s.genMu.Unlock()

	s.mu.Lock()
	s.plan = plan
	s.mu.Unlock()
	return plan
}
