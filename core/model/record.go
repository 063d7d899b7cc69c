package model

import "time"

// HoursPerDay is the number of hourly steps in a day-ahead plan.
const HoursPerDay = 24

// HourlyRecord describes the dispatch of the park for one hour of the day.
// Positive BESSChargeMW means the battery absorbs power, negative means it
// discharges.
type HourlyRecord struct {
	Hour           int     `json:"hour" yaml:"hour"`
	HourLabel      string  `json:"time" yaml:"time"`
	SolarMW        float64 `json:"solarMW" yaml:"solar_mw"`
	BESSChargeMW   float64 `json:"bessChargeMW" yaml:"bess_charge_mw"`
	GridExportMW   float64 `json:"gridExportMW" yaml:"grid_export_mw"`
	HydrogenKg     float64 `json:"h2ProductionKg" yaml:"h2_production_kg"`
	MarketPriceINR float64 `json:"marketPriceINR" yaml:"market_price_inr"`
}

// Charging reports whether the battery absorbs power during the hour.
func (r HourlyRecord) Charging() bool { return r.BESSChargeMW > 0 }

// DayPlan is the immutable output of one simulation run.
type DayPlan struct {
	ID          string
	GeneratedAt time.Time
	records     []HourlyRecord
}

// NewDayPlan copies records into a new plan.
func NewDayPlan(id string, generatedAt time.Time, records []HourlyRecord) DayPlan {
	cp := make([]HourlyRecord, len(records))
	copy(cp, records)
	return DayPlan{ID: id, GeneratedAt: generatedAt, records: cp}
}

// Records returns a copy of the hourly records in ascending hour order.
func (p DayPlan) Records() []HourlyRecord {
	cp := make([]HourlyRecord, len(p.records))
	copy(cp, p.records)
	return cp
}

// Len returns the number of records in the plan.
func (p DayPlan) Len() int { return len(p.records) }

// At returns the record for the given hour index.
func (p DayPlan) At(hour int) (HourlyRecord, bool) {
	if hour < 0 || hour >= len(p.records) {
		return HourlyRecord{}, false
	}
	return p.records[hour], true
}

// Latest returns the last record of the plan.
func (p DayPlan) Latest() (HourlyRecord, bool) {
	return p.At(len(p.records) - 1)
}

// dayPlanJSON is the wire form of a DayPlan.
type dayPlanJSON struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Records     []HourlyRecord `json:"records"`
}
