package events

import "time"

// SimulationEvent is published after each simulation run.
type SimulationEvent struct {
	PlanID          string
	Records         int
	TotalSolarMWh   float64
	TotalHydrogenKg float64
	ArbitrageHours  int
	Duration        time.Duration
	Time            time.Time
}
