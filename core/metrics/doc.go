// Package metrics defines the sinks recording simulation runs and insight
// requests. Sinks like PromSink and InfluxSink live in infra/metrics and can be
// combined with NewMultiSink. NewMetricsSink returns a MultiSink automatically
// when multiple sinks are configured.
package metrics
