package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/hybridpark/core/model"
)

// CSVHeader lists the columns written by WriteCSV, using the dashboard wire names.
var CSVHeader = []string{"time", "solarMW", "bessChargeMW", "gridExportMW", "h2ProductionKg", "marketPriceINR"}

// WriteJSON writes the day plan to w in JSON format.
func WriteJSON(w io.Writer, plan model.DayPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes one row per hourly record.
func WriteCSV(w io.Writer, records []model.HourlyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		rec := []string{
			r.HourLabel,
			formatFloat(r.SolarMW),
			formatFloat(r.BESSChargeMW),
			formatFloat(r.GridExportMW),
			formatFloat(r.HydrogenKg),
			formatFloat(r.MarketPriceINR),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
