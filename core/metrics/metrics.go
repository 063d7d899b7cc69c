package metrics

import "time"

// SimulationRun summarises one generated day plan.
type SimulationRun struct {
	PlanID          string
	Records         int
	TotalSolarMWh   float64
	TotalHydrogenKg float64
	ArbitrageHours  int
	Duration        time.Duration
	Time            time.Time
}

// MetricsSink records simulation runs for observability purposes.
type MetricsSink interface {
	RecordSimulation(run SimulationRun) error
}

// InsightCall captures the outcome of one insight request.
type InsightCall struct {
	Kind       string
	Fallback   bool
	Confidence float64
	Latency    time.Duration
	Error      string
	Time       time.Time
}

// InsightRecorder records insight requests.
type InsightRecorder interface {
	RecordInsight(call InsightCall) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordSimulation(SimulationRun) error { return nil }
func (NopSink) RecordInsight(InsightCall) error      { return nil }
