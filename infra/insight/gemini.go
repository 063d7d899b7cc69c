// Package insight adapts the Gemini API to the insight.Generator boundary.
package insight

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	coreinsight "github.com/kilianp07/hybridpark/core/insight"
	"github.com/kilianp07/hybridpark/core/logger"
	infralogger "github.com/kilianp07/hybridpark/infra/logger"
)

// ErrEmptyResponse is returned when the model produced no candidates.
var ErrEmptyResponse = errors.New("gemini: empty response")

// models is the subset of *genai.Models used by the generator.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements insight.Generator with the genai SDK.
type GeminiGenerator struct {
	models models
	log    logger.Logger
}

// NewGeminiGenerator creates the client once with the configured key. A
// missing key still yields a generator; its calls fail upstream and the
// service answers with the fallback.
func NewGeminiGenerator(ctx context.Context, cfg coreinsight.Config) (*GeminiGenerator, error) {
	cfg.SetDefaults()
	log := infralogger.New("gemini")
	if !cfg.HasKey() {
		log.Warnf("no API key configured, insights will use the fallback")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiGenerator{models: client.Models, log: log}, nil
}

// GenerateContent sends one prompt with the system instruction attached.
func (g *GeminiGenerator) GenerateContent(ctx context.Context, req coreinsight.Request) (string, error) {
	conf := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		conf.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	resp, err := g.models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), conf)
	if err != nil {
		return "", fmt.Errorf("gemini generate %s: %w", req.Model, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	g.log.Debugw("generated content", map[string]any{"model": req.Model, "chars": len(text)})
	return text, nil
}
