package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	coreinsight "github.com/kilianp07/hybridpark/core/insight"
	infralogger "github.com/kilianp07/hybridpark/infra/logger"
)

type fakeModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	return f.resp, f.err
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: s}}},
	}}}
}

func TestGenerateContentSendsRequest(t *testing.T) {
	fm := &fakeModels{resp: textResponse("Charge the BESS.")}
	g := &GeminiGenerator{models: fm, log: infralogger.NopLogger{}}

	out, err := g.GenerateContent(context.Background(), coreinsight.Request{
		Model:             "m",
		SystemInstruction: "persona",
		Prompt:            "prompt",
		Temperature:       0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Charge the BESS.", out)
	assert.Equal(t, "m", fm.model)
	require.Len(t, fm.contents, 1)
	assert.Equal(t, "prompt", fm.contents[0].Parts[0].Text)
	require.NotNil(t, fm.config.Temperature)
	assert.InDelta(t, 0.2, *fm.config.Temperature, 1e-6)
	require.NotNil(t, fm.config.SystemInstruction)
	assert.Equal(t, "persona", fm.config.SystemInstruction.Parts[0].Text)
}

func TestGenerateContentErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := &GeminiGenerator{models: &fakeModels{err: boom}, log: infralogger.NopLogger{}}
	_, err := g.GenerateContent(context.Background(), coreinsight.Request{Model: "m"})
	assert.ErrorIs(t, err, boom)

	g = &GeminiGenerator{models: &fakeModels{resp: &genai.GenerateContentResponse{}}, log: infralogger.NopLogger{}}
	_, err = g.GenerateContent(context.Background(), coreinsight.Request{Model: "m"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
