package events

import "time"

// InsightKind names the type of insight request.
type InsightKind string

const (
	InsightEnergy      InsightKind = "energy_analysis"
	InsightMaintenance InsightKind = "maintenance_diagnosis"
)

func (k InsightKind) String() string { return string(k) }

// InsightEvent is published for each answered insight request. Err is set when
// the fallback payload was returned.
type InsightEvent struct {
	Kind       InsightKind
	Confidence float64
	Latency    time.Duration
	Err        error
	Time       time.Time
}
