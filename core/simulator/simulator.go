package simulator

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/hybridpark/core/model"
)

// Simulator derives hourly dispatch records from Params and a noise source.
type Simulator struct {
	params Params
	rng    RandomSource
}

// New validates params and returns a Simulator drawing noise from rng.
func New(params Params, rng RandomSource) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSeededSource(0)
	}
	return &Simulator{params: params, rng: rng}, nil
}

// Params returns the constants used by the simulator.
func (s *Simulator) Params() Params { return s.params }

// Run builds a full day plan, one record per hour in ascending order.
func (s *Simulator) Run(now time.Time) model.DayPlan {
	records := make([]model.HourlyRecord, 0, model.HoursPerDay)
	for h := 0; h < model.HoursPerDay; h++ {
		records = append(records, s.Simulate(h))
	}
	return model.NewDayPlan(uuid.NewString(), now, records)
}

// Simulate computes the record of a single hour.
func (s *Simulator) Simulate(hour int) model.HourlyRecord {
	solar := s.solar(hour)
	price := s.price(hour)
	bess, export, h2 := s.firmDispatch(solar)
	if price > s.params.ArbitrageThresholdINR {
		// replaces the firm export, it does not add to it
		bess, export = s.arbitrage(solar, bess)
	}
	return model.HourlyRecord{
		Hour:           hour,
		HourLabel:      HourLabel(hour),
		SolarMW:        math.Max(0, Round(solar, 1)),
		BESSChargeMW:   Round(bess, 1),
		GridExportMW:   Round(export, 1),
		HydrogenKg:     Round(h2, 1),
		MarketPriceINR: Round(price, 2),
	}
}

// HourLabel formats an hour index as HH:00.
func HourLabel(hour int) string { return fmt.Sprintf("%02d:00", hour) }

func (s *Simulator) solar(hour int) float64 {
	p := s.params
	if hour <= p.SolarStartHour || hour >= p.SolarEndHour {
		return 0
	}
	mw := p.SolarPeakMW * math.Sin((float64(hour-p.SolarStartHour)/p.SolarSpanHours)*math.Pi)
	return mw * (p.CloudMin + s.rng.Float64()*p.CloudSpread)
}

func (s *Simulator) price(hour int) float64 {
	price := s.params.BasePriceINR
	for _, b := range s.params.PriceBands {
		if b.Contains(hour) {
			price = b.Base + s.rng.Float64()*b.Spread
		}
	}
	return price
}

// firmDispatch exports the firm target. Surplus charges the battery up to
// MaxChargeMW and the rest feeds the electrolyser. A shortfall is always
// covered by discharging.
func (s *Simulator) firmDispatch(solar float64) (bess, export, h2 float64) {
	p := s.params
	export = p.FirmTargetMW
	if solar <= p.FirmTargetMW {
		return -(p.FirmTargetMW - solar), export, 0
	}
	bess = solar - p.FirmTargetMW
	if bess > p.MaxChargeMW {
		surplus := bess - p.MaxChargeMW
		bess = p.MaxChargeMW
		// MW over a one-hour step read as MWh, then kWh.
		h2 = (surplus * 1000) / p.ElectrolyserKWhPerKg
	}
	return bess, export, h2
}

func (s *Simulator) arbitrage(solar, bess float64) (float64, float64) {
	bess = math.Max(bess-s.params.ArbitrageStepMW, -s.params.MaxDischargeMW)
	return bess, solar - bess
}
