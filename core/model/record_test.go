package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayPlanIsolatesRecords(t *testing.T) {
	recs := []HourlyRecord{{Hour: 0, HourLabel: "00:00"}, {Hour: 1, HourLabel: "01:00", SolarMW: 5}}
	p := NewDayPlan("p1", time.Unix(0, 0), recs)
	recs[0].SolarMW = 99

	got := p.Records()
	assert.Equal(t, 0.0, got[0].SolarMW)
	got[1].SolarMW = 42
	r, ok := p.At(1)
	require.True(t, ok)
	assert.Equal(t, 5.0, r.SolarMW)
}

func TestDayPlanAt(t *testing.T) {
	p := NewDayPlan("p1", time.Unix(0, 0), []HourlyRecord{{Hour: 0}, {Hour: 1}})
	_, ok := p.At(-1)
	assert.False(t, ok)
	_, ok = p.At(2)
	assert.False(t, ok)
	last, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, 1, last.Hour)

	_, ok = DayPlan{}.Latest()
	assert.False(t, ok)
}

func TestDayPlanJSON(t *testing.T) {
	p := NewDayPlan("p1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), []HourlyRecord{{Hour: 3, HourLabel: "03:00", MarketPriceINR: 2.61}})
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"time":"03:00"`)
	assert.Contains(t, string(b), `"h2ProductionKg":0`)
	assert.Contains(t, string(b), `"generatedAt":"2024-01-02T00:00:00Z"`)

	var back DayPlan
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Records(), back.Records())
}
