package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/infra/logger"
)

// InfluxConfig holds the connection settings of the InfluxDB sink.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes simulation and insight summaries to an InfluxDB instance
// using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSimulation writes a summary point for the generated plan.
func (s *InfluxSink) RecordSimulation(run coremetrics.SimulationRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("simulation_run").
		AddTag("plan_id", run.PlanID).
		AddTag("component", "simulator").
		AddField("records", run.Records).
		AddField("solar_mwh", round3(run.TotalSolarMWh)).
		AddField("hydrogen_kg", round3(run.TotalHydrogenKg)).
		AddField("arbitrage_hours", run.ArbitrageHours).
		AddField("duration_ms", round3(run.Duration.Seconds()*1000)).
		SetTime(run.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordInsight writes the outcome of an insight request.
func (s *InfluxSink) RecordInsight(call coremetrics.InsightCall) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("insight_request").
		AddTag("kind", call.Kind).
		AddTag("fallback", strconv.FormatBool(call.Fallback)).
		AddTag("component", "insight").
		AddField("confidence", round3(call.Confidence)).
		AddField("latency_ms", round3(call.Latency.Seconds()*1000)).
		AddField("errors", call.Error).
		SetTime(call.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
