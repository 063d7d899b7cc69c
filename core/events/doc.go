// Package events defines the events emitted on the event bus.
//
// Available event types:
//   - SimulationEvent: a day plan was generated
//   - InsightEvent: the insight service answered, possibly with the fallback
package events
