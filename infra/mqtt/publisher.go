package mqtt

import (
	"context"
	"fmt"
	"sync"

	"github.com/kilianp07/hybridpark/core/model"
)

// Publisher sends a generated plan to downstream consumers.
type Publisher interface {
	PublishPlan(ctx context.Context, plan model.DayPlan) error
	Disconnect()
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	Plans []model.DayPlan
	Fail  bool
	mu    sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher { return &MockPublisher{} }

// PublishPlan records the plan or returns an error if configured to fail.
func (m *MockPublisher) PublishPlan(_ context.Context, plan model.DayPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Plans = append(m.Plans, plan)
	return nil
}

// Published returns the number of recorded plans.
func (m *MockPublisher) Published() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Plans)
}

// Disconnect is a no-op.
func (m *MockPublisher) Disconnect() {}
