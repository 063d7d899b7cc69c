package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kilianp07/hybridpark/core/events"
	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/internal/eventbus"
)

type runSink struct {
	mu   sync.Mutex
	runs []coremetrics.SimulationRun
}

func (s *runSink) RecordSimulation(r coremetrics.SimulationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, r)
	return nil
}

func (s *runSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

func TestEventCollectorRecordsSimulations(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sink := &runSink{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartEventCollector(ctx, bus, sink)
	bus.Publish(events.InsightEvent{Kind: events.InsightEnergy})
	bus.Publish(events.SimulationEvent{PlanID: "p1", Records: 24, ArbitrageHours: 5})

	deadline := time.Now().Add(time.Second)
	for sink.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.count() != 1 {
		t.Fatalf("expected one recorded run, got %d", sink.count())
	}
	if sink.runs[0].PlanID != "p1" || sink.runs[0].ArbitrageHours != 5 {
		t.Fatalf("unexpected run %+v", sink.runs[0])
	}
}
