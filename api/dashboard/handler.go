package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/kilianp07/hybridpark/core/assets"
	"github.com/kilianp07/hybridpark/core/dashboard"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// NewKPIHandler exposes the dashboard figures of the current plan via GET /api/dashboard/kpi.
func NewKPIHandler(src simulator.PlanSource, arbitrageThreshold float64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard.Summary(src.Plan(), arbitrageThreshold)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewAssetsHandler exposes the asset snapshot via GET /api/assets.
func NewAssetsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(assets.Status())
	})
}
