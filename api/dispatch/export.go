package dispatch

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/kilianp07/hybridpark/core/dashboard"
	"github.com/kilianp07/hybridpark/core/simulator"
	"github.com/kilianp07/hybridpark/infra/report"
	"github.com/kilianp07/hybridpark/pkg/export"
)

// NewExportHandler serves the current plan as a document via
// GET /api/dispatch/export?format=xlsx|csv|pdf. The default format is xlsx.
func NewExportHandler(src simulator.PlanSource, arbitrageThreshold float64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		plan := src.Plan()
		kpi := dashboard.Summary(plan, arbitrageThreshold)
		var (
			data        []byte
			err         error
			contentType string
			ext         string
		)
		switch format := r.URL.Query().Get("format"); format {
		case "", "xlsx":
			data, err = report.BuildPlanXLSX(plan, kpi)
			contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
		case "csv":
			var buf bytes.Buffer
			err = export.WriteCSV(&buf, plan.Records())
			data, contentType, ext = buf.Bytes(), "text/csv", "csv"
		case "pdf":
			data, err = report.BuildPlanPDF(plan, kpi)
			contentType, ext = "application/pdf", "pdf"
		default:
			http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="plan-%s.%s"`, plan.ID, ext))
		_, _ = w.Write(data)
	})
}
