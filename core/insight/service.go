package insight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/hybridpark/core/events"
	"github.com/kilianp07/hybridpark/core/logger"
	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/internal/eventbus"
)

// ErrUnavailable is the single failure kind of the insight boundary.
var ErrUnavailable = errors.New("analysis unavailable")

// Request is one text-generation call.
type Request struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

// Generator produces text for a request. Implementations talk to the external
// model provider.
type Generator interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
}

// Service turns park state into prose insights.
type Service struct {
	gen Generator
	cfg Config
	log logger.Logger
	rec coremetrics.InsightRecorder
	bus eventbus.EventBus
	now func() time.Time
}

// NewService creates a Service. rec and bus may be nil.
func NewService(gen Generator, cfg Config, log logger.Logger, rec coremetrics.InsightRecorder, bus eventbus.EventBus) *Service {
	cfg.SetDefaults()
	return &Service{gen: gen, cfg: cfg, log: log, rec: rec, bus: bus, now: time.Now}
}

// EnergyAnalysis asks for a dispatch strategy based on a single record.
func (s *Service) EnergyAnalysis(ctx context.Context, rec model.HourlyRecord) model.Insight {
	req := Request{
		Model:             s.cfg.Model,
		SystemInstruction: SystemInstruction,
		Prompt:            EnergyPrompt(RecordContext(rec)),
		Temperature:       s.cfg.EnergyTemperature,
	}
	text, ok := s.call(ctx, events.InsightEnergy, req)
	if !ok {
		return s.fallback(EnergyFallbackText)
	}
	if text == "" {
		text = emptyEnergyText
	}
	ins := s.insight(text, energyConfidence)
	ins.RecommendedAction = RecommendedReview
	return ins
}

// MaintenanceDiagnosis asks for a root cause analysis of an alert payload.
func (s *Service) MaintenanceDiagnosis(ctx context.Context, alert string) model.Insight {
	req := Request{
		Model:             s.cfg.Model,
		SystemInstruction: SystemInstruction,
		Prompt:            DiagnosisPrompt(alert),
		Temperature:       s.cfg.DiagnosisTemperature,
	}
	text, ok := s.call(ctx, events.InsightMaintenance, req)
	if !ok {
		return s.fallback(DiagnosisFallbackText)
	}
	if text == "" {
		text = emptyDiagnosisText
	}
	return s.insight(text, diagnosisConfidence)
}

func (s *Service) call(ctx context.Context, kind events.InsightKind, req Request) (string, bool) {
	start := s.now()
	var (
		text string
		err  error
	)
	if s.gen == nil {
		err = fmt.Errorf("%w: no generator configured", ErrUnavailable)
	} else if text, err = s.gen.GenerateContent(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	latency := s.now().Sub(start)

	conf := 0.0
	if err == nil {
		conf = confidenceFor(kind)
	} else if s.log != nil {
		s.log.Errorf("%s: %v", kind, err)
	}
	s.report(kind, conf, latency, err)
	return text, err == nil
}

func (s *Service) report(kind events.InsightKind, conf float64, latency time.Duration, err error) {
	now := s.now()
	if s.bus != nil {
		s.bus.Publish(events.InsightEvent{Kind: kind, Confidence: conf, Latency: latency, Err: err, Time: now})
	}
	if s.rec == nil {
		return
	}
	call := coremetrics.InsightCall{Kind: kind.String(), Fallback: err != nil, Confidence: conf, Latency: latency, Time: now}
	if err != nil {
		call.Error = err.Error()
	}
	if rerr := s.rec.RecordInsight(call); rerr != nil && s.log != nil {
		s.log.Warnf("record insight: %v", rerr)
	}
}

func (s *Service) insight(text string, conf float64) model.Insight {
	return model.Insight{ID: uuid.NewString(), Text: text, Timestamp: s.now(), Confidence: conf}
}

func (s *Service) fallback(text string) model.Insight {
	return s.insight(text, 0)
}

func confidenceFor(kind events.InsightKind) float64 {
	if kind == events.InsightMaintenance {
		return diagnosisConfidence
	}
	return energyConfidence
}
