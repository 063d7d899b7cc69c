package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/hybridpark/config"
	"github.com/kilianp07/hybridpark/core/events"
	"github.com/kilianp07/hybridpark/core/factory"
	coreinsight "github.com/kilianp07/hybridpark/core/insight"
	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/infra/mqtt"
)

type cannedGenerator struct{ text string }

func (g cannedGenerator) GenerateContent(context.Context, coreinsight.Request) (string, error) {
	return g.text, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Simulator.Seed = 5
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.StreamIntervalMS = 1
	return cfg
}

func TestServiceRegenerateAnnouncesPlan(t *testing.T) {
	pub := mqtt.NewMockPublisher()
	svc, err := New(context.Background(), testConfig(), WithGenerator(cannedGenerator{"ok"}), WithPublisher(pub))
	require.NoError(t, err)
	defer svc.Close()

	sub := svc.Bus().Subscribe()
	first := svc.Plans().Plan()
	plan := svc.Regenerate(context.Background())

	assert.NotEqual(t, first.ID, plan.ID)
	assert.Equal(t, plan.ID, svc.Plans().Plan().ID)
	require.Equal(t, 1, pub.Published())
	assert.Equal(t, plan.ID, pub.Plans[0].ID)

	select {
	case ev := <-sub:
		se, ok := ev.(events.SimulationEvent)
		require.True(t, ok, "unexpected event %T", ev)
		assert.Equal(t, plan.ID, se.PlanID)
		assert.Equal(t, model.HoursPerDay, se.Records)
	case <-time.After(time.Second):
		t.Fatal("no simulation event")
	}
}

func TestServicePublishFailureIsLogged(t *testing.T) {
	pub := mqtt.NewMockPublisher()
	pub.Fail = true
	svc, err := New(context.Background(), testConfig(), WithGenerator(cannedGenerator{"ok"}), WithPublisher(pub))
	require.NoError(t, err)
	defer svc.Close()

	plan := svc.Regenerate(context.Background())
	assert.Equal(t, model.HoursPerDay, plan.Len())
	assert.Equal(t, 0, pub.Published())
}

func TestServiceHandler(t *testing.T) {
	svc, err := New(context.Background(), testConfig(), WithGenerator(cannedGenerator{"Shift 50 MW to the evening peak."}))
	require.NoError(t, err)
	defer svc.Close()
	h := svc.Handler()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dispatch/day", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var plan model.DayPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, svc.Plans().Plan().ID, plan.ID)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/insight", strings.NewReader(`{"hour":19}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	var ins model.Insight
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ins))
	assert.Equal(t, "Shift 50 MW to the evening peak.", ins.Text)
	assert.Equal(t, coreinsight.RecommendedReview, ins.RecommendedAction)
}

func TestServiceRunStopsOnCancel(t *testing.T) {
	pub := mqtt.NewMockPublisher()
	svc, err := New(context.Background(), testConfig(), WithGenerator(cannedGenerator{"ok"}), WithPublisher(pub))
	require.NoError(t, err)
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.Published() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, svc.Plans().Plan().ID, pub.Plans[0].ID)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
}

func TestNewRejectsUnknownSink(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "carrier-pigeon"}}
	_, err := New(context.Background(), cfg, WithGenerator(cannedGenerator{}))
	assert.Error(t, err)
}
