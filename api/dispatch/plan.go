package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// NewDayHandler returns an HTTP handler exposing the current plan via GET /api/dispatch/day.
func NewDayHandler(src simulator.PlanSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, src.Plan())
	})
}

// NewHourHandler exposes a single record via GET /api/dispatch/hour/{hour}.
func NewHourHandler(src simulator.PlanSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/dispatch/hour/"), "/")
		hour, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid hour", http.StatusBadRequest)
			return
		}
		rec, ok := src.Plan().At(hour)
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, rec)
	})
}

// NewRegenerateHandler runs a new simulation via POST /api/dispatch/regenerate
// and returns the resulting plan.
func NewRegenerateHandler(regenerate func(ctx context.Context) model.DayPlan) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, regenerate(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
