package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/hybridpark/core/insight"
	"github.com/kilianp07/hybridpark/core/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	simSeed, simOutput, simFile, insightHour, cfgPath = 0, "table", "", -1, ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSimulateJSON(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "3", "-o", "json")
	require.NoError(t, err)
	var plan model.DayPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, model.HoursPerDay, plan.Len())
}

func TestSimulateSeedIsDeterministic(t *testing.T) {
	a, err := execute(t, "simulate", "--seed", "3", "-o", "yaml")
	require.NoError(t, err)
	b, err := execute(t, "simulate", "--seed", "3", "-o", "yaml")
	require.NoError(t, err)

	var pa, pb struct {
		Records []model.HourlyRecord `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(a), &pa))
	require.NoError(t, yaml.Unmarshal([]byte(b), &pb))
	require.Len(t, pa.Records, model.HoursPerDay)
	assert.Equal(t, pa.Records, pb.Records)
}

func TestSimulateTable(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "13:00")
	assert.Contains(t, out, "MWh solar")
}

func TestSimulateCSV(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "4", "-o", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, model.HoursPerDay+1)
	assert.True(t, strings.HasPrefix(lines[0], "time,solarMW"))
	assert.True(t, strings.HasPrefix(lines[1], "00:00,0,"))
}

func TestSimulateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	_, err := execute(t, "simulate", "-o", "pdf", "-f", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSimulateUnknownOutput(t *testing.T) {
	_, err := execute(t, "simulate", "-o", "toml")
	assert.Error(t, err)
}

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) GenerateContent(context.Context, insight.Request) (string, error) {
	return g.text, g.err
}

func withGenerator(t *testing.T, g insight.Generator) {
	t.Helper()
	prev := newGenerator
	newGenerator = func(context.Context, insight.Config) (insight.Generator, error) { return g, nil }
	t.Cleanup(func() { newGenerator = prev })
}

func TestInsightCommand(t *testing.T) {
	withGenerator(t, stubGenerator{text: "Discharge 50 MW during the evening peak."})
	out, err := execute(t, "insight", "--hour", "20", "--seed", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "20:00"), out)
	assert.Contains(t, out, "Discharge 50 MW")
	assert.Contains(t, out, "Confidence: 0.95")
}

func TestInsightCommandFallback(t *testing.T) {
	withGenerator(t, stubGenerator{err: errors.New("quota")})
	out, err := execute(t, "insight")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "12:00"), out)
	assert.Contains(t, out, insight.EnergyFallbackText)
	assert.Contains(t, out, "Confidence: 0.00")
}

func TestInsightCommandHourOutOfRange(t *testing.T) {
	withGenerator(t, stubGenerator{})
	_, err := execute(t, "insight", "--hour", "24")
	assert.Error(t, err)
}
