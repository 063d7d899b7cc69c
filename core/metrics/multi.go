package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSimulation forwards the run to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSimulation(run SimulationRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordSimulation(run); err != nil {
			return err
		}
	}
	return nil
}

// RecordInsight forwards the call to every sink implementing InsightRecorder.
func (m *MultiSink) RecordInsight(call InsightCall) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(InsightRecorder); ok {
			if err := rec.RecordInsight(call); err != nil {
				return err
			}
		}
	}
	return nil
}
