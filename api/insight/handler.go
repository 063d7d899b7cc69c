package insight

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	coreinsight "github.com/kilianp07/hybridpark/core/insight"
	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// Analyst produces an energy insight for one record.
type Analyst interface {
	EnergyAnalysis(ctx context.Context, rec model.HourlyRecord) model.Insight
}

type request struct {
	Hour *int `json:"hour"`
}

// NewHandler returns the energy insight for one hour of the current plan via
// POST /api/insight. Without an hour the mid-day record is analysed. Provider
// failures are answered with the fallback insight and status 200.
func NewHandler(src simulator.PlanSource, a Analyst) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		plan := src.Plan()
		hour := coreinsight.DefaultContextHour
		if req.Hour != nil {
			hour = *req.Hour
		}
		rec, ok := plan.At(hour)
		if !ok {
			http.Error(w, "hour out of range", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a.EnergyAnalysis(r.Context(), rec))
	})
}
