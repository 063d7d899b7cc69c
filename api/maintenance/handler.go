package maintenance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kilianp07/hybridpark/core/assets"
	"github.com/kilianp07/hybridpark/core/model"
)

// Diagnoser produces a root cause analysis for an alert payload.
type Diagnoser interface {
	MaintenanceDiagnosis(ctx context.Context, alert string) model.Insight
}

// CellView is a cell with its thermal classification.
type CellView struct {
	model.BESSCell
	State model.AssetState `json:"state"`
}

// NewCellsHandler exposes the rack cell matrix via GET /api/maintenance/cells.
func NewCellsHandler(cells []model.BESSCell) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		out := make([]CellView, len(cells))
		for i, c := range cells {
			out[i] = CellView{BESSCell: c, State: assets.ThermalState(c)}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
}

type diagnosisRequest struct {
	CellID string `json:"cell_id"`
}

// NewDiagnosisHandler runs a diagnosis for one cell via POST /api/maintenance/diagnosis.
// Provider failures are answered with the fallback insight and status 200.
func NewDiagnosisHandler(cells []model.BESSCell, d Diagnoser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req diagnosisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CellID == "" {
			http.Error(w, "cell_id is required", http.StatusBadRequest)
			return
		}
		cell, ok := assets.FindCell(cells, req.CellID)
		if !ok {
			http.NotFound(w, r)
			return
		}
		alert, err := assets.AlertContext(cell)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d.MaintenanceDiagnosis(r.Context(), alert))
	})
}
