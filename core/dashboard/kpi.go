// Package dashboard aggregates a day plan into the headline figures shown on
// the operations dashboard.
package dashboard

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// FirmCommitmentMW is the contracted export shown next to the grid injection.
const FirmCommitmentMW = 200

// KPI summarises a day plan. Energy totals treat each hourly MW value as MWh.
type KPI struct {
	CurrentExportMW float64 `json:"currentExportMW"`
	RevenueLakh     float64 `json:"revenueLakh"`
	TotalSolarMWh   float64 `json:"totalSolarMWh"`
	TotalExportMWh  float64 `json:"totalExportMWh"`
	TotalHydrogenKg float64 `json:"totalHydrogenKg"`
	PeakPriceINR    float64 `json:"peakPriceINR"`
	MeanPriceINR    float64 `json:"meanPriceINR"`
	ArbitrageHours  int     `json:"arbitrageHours"`
}

// CurrentExport returns the grid export of the last record, or 0 for an
// empty plan.
func CurrentExport(plan model.DayPlan) float64 {
	last, ok := plan.Latest()
	if !ok {
		return 0
	}
	return last.GridExportMW
}

// DailyRevenueLakh estimates revenue as the sum of export times price / 1000.
func DailyRevenueLakh(plan model.DayPlan) float64 {
	var total float64
	for _, r := range plan.Records() {
		total += r.GridExportMW * (r.MarketPriceINR / 1000)
	}
	return total
}

// Summary computes the KPI block for a plan. threshold is the price above
// which an hour counts as an arbitrage hour.
func Summary(plan model.DayPlan, threshold float64) KPI {
	recs := plan.Records()
	if len(recs) == 0 {
		return KPI{}
	}
	solar := make([]float64, len(recs))
	export := make([]float64, len(recs))
	h2 := make([]float64, len(recs))
	price := make([]float64, len(recs))
	arb := 0
	for i, r := range recs {
		solar[i] = r.SolarMW
		export[i] = r.GridExportMW
		h2[i] = r.HydrogenKg
		price[i] = r.MarketPriceINR
		if r.MarketPriceINR > threshold {
			arb++
		}
	}
	return KPI{
		CurrentExportMW: CurrentExport(plan),
		RevenueLakh:     simulator.Round(DailyRevenueLakh(plan), 2),
		TotalSolarMWh:   simulator.Round(floats.Sum(solar), 1),
		TotalExportMWh:  simulator.Round(floats.Sum(export), 1),
		TotalHydrogenKg: simulator.Round(floats.Sum(h2), 1),
		PeakPriceINR:    floats.Max(price),
		MeanPriceINR:    simulator.Round(stat.Mean(price, nil), 2),
		ArbitrageHours:  arb,
	}
}
