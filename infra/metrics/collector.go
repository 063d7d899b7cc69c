package metrics

import (
	"context"

	"github.com/kilianp07/hybridpark/core/events"
	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/infra/logger"
	"github.com/kilianp07/hybridpark/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records simulation
// events into the sink. It stops when the context is canceled or the bus is
// closed. Insight events are not collected here because the insight service
// records them directly.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	log := logger.New("metrics-collector")
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				e, ok := ev.(events.SimulationEvent)
				if !ok {
					continue
				}
				if err := sink.RecordSimulation(coremetrics.SimulationRun{
					PlanID:          e.PlanID,
					Records:         e.Records,
					TotalSolarMWh:   e.TotalSolarMWh,
					TotalHydrogenKg: e.TotalHydrogenKg,
					ArbitrageHours:  e.ArbitrageHours,
					Duration:        e.Duration,
					Time:            e.Time,
				}); err != nil {
					log.Warnf("record simulation %s: %v", e.PlanID, err)
				}
			}
		}
	}()
}
