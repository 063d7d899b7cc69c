package simulator

import (
	"errors"
	"fmt"
)

// PriceBand overrides the base price for the inclusive hour range [From, To]
// with Base + U[0,1)*Spread.
type PriceBand struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Base   float64 `json:"base"`
	Spread float64 `json:"spread"`
}

// Contains reports whether the hour falls inside the band.
func (b PriceBand) Contains(hour int) bool { return hour >= b.From && hour <= b.To }

// Params holds the constants of the dispatch heuristic. A zero field means
// "use the default" to WithDefaults, so Validate rejects zero wherever it
// would otherwise be silently replaced.
type Params struct {
	// Solar output is zero outside the open interval (SolarStartHour, SolarEndHour).
	SolarStartHour int     `json:"solar_start_hour"`
	SolarEndHour   int     `json:"solar_end_hour"`
	SolarPeakMW    float64 `json:"solar_peak_mw"`
	// SolarSpanHours is the divisor of the sine argument.
	SolarSpanHours float64 `json:"solar_span_hours"`
	CloudMin       float64 `json:"cloud_min"`
	CloudSpread    float64 `json:"cloud_spread"`

	BasePriceINR float64 `json:"base_price_inr"`
	// PriceBands are evaluated in order; a later matching band overwrites an
	// earlier one.
	PriceBands []PriceBand `json:"price_bands"`

	FirmTargetMW         float64 `json:"firm_target_mw"`
	MaxChargeMW          float64 `json:"max_charge_mw"`
	MaxDischargeMW       float64 `json:"max_discharge_mw"`
	ElectrolyserKWhPerKg float64 `json:"electrolyser_kwh_per_kg"`

	ArbitrageThresholdINR float64 `json:"arbitrage_threshold_inr"`
	ArbitrageStepMW       float64 `json:"arbitrage_step_mw"`
}

// DefaultParams returns the park's reference heuristic.
func DefaultParams() Params {
	return Params{
		SolarStartHour: 6,
		SolarEndHour:   19,
		SolarPeakMW:    400,
		SolarSpanHours: 13,
		CloudMin:       0.8,
		CloudSpread:    0.2,
		BasePriceINR:   3.5,
		PriceBands: []PriceBand{
			{From: 8, To: 11, Base: 6.5, Spread: 1},
			{From: 18, To: 22, Base: 10, Spread: 2},
			{From: 1, To: 5, Base: 2.5, Spread: 0.5},
		},
		FirmTargetMW:          200,
		MaxChargeMW:           250,
		MaxDischargeMW:        250,
		ElectrolyserKWhPerKg:  50,
		ArbitrageThresholdINR: 9,
		ArbitrageStepMW:       50,
	}
}

// WithDefaults fills zero fields from DefaultParams.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.SolarStartHour == 0 && p.SolarEndHour == 0 {
		p.SolarStartHour, p.SolarEndHour = d.SolarStartHour, d.SolarEndHour
	}
	if p.SolarPeakMW == 0 {
		p.SolarPeakMW = d.SolarPeakMW
	}
	if p.SolarSpanHours == 0 {
		p.SolarSpanHours = d.SolarSpanHours
	}
	if p.CloudMin == 0 && p.CloudSpread == 0 {
		p.CloudMin, p.CloudSpread = d.CloudMin, d.CloudSpread
	}
	if p.BasePriceINR == 0 {
		p.BasePriceINR = d.BasePriceINR
	}
	if p.PriceBands == nil {
		p.PriceBands = d.PriceBands
	}
	if p.FirmTargetMW == 0 {
		p.FirmTargetMW = d.FirmTargetMW
	}
	if p.MaxChargeMW == 0 {
		p.MaxChargeMW = d.MaxChargeMW
	}
	if p.MaxDischargeMW == 0 {
		p.MaxDischargeMW = d.MaxDischargeMW
	}
	if p.ElectrolyserKWhPerKg == 0 {
		p.ElectrolyserKWhPerKg = d.ElectrolyserKWhPerKg
	}
	if p.ArbitrageThresholdINR == 0 {
		p.ArbitrageThresholdINR = d.ArbitrageThresholdINR
	}
	if p.ArbitrageStepMW == 0 {
		p.ArbitrageStepMW = d.ArbitrageStepMW
	}
	return p
}

// ErrInvalidParams is returned by Validate.
var ErrInvalidParams = errors.New("invalid simulator params")

// Validate checks that the heuristic constants are usable.
func (p Params) Validate() error {
	switch {
	case p.SolarStartHour >= p.SolarEndHour:
		return fmt.Errorf("%w: solar window %d..%d is empty", ErrInvalidParams, p.SolarStartHour, p.SolarEndHour)
	case p.SolarSpanHours <= 0:
		return fmt.Errorf("%w: solar_span_hours must be >0", ErrInvalidParams)
	case p.SolarPeakMW <= 0:
		return fmt.Errorf("%w: solar_peak_mw must be >0", ErrInvalidParams)
	case p.CloudMin < 0 || p.CloudSpread < 0:
		return fmt.Errorf("%w: cloud factor must be >=0", ErrInvalidParams)
	case p.CloudMin == 0 && p.CloudSpread == 0:
		return fmt.Errorf("%w: cloud_min and cloud_spread cannot both be 0", ErrInvalidParams)
	case p.BasePriceINR <= 0:
		return fmt.Errorf("%w: base_price_inr must be >0", ErrInvalidParams)
	case p.FirmTargetMW <= 0:
		return fmt.Errorf("%w: firm_target_mw must be >0", ErrInvalidParams)
	case p.MaxChargeMW <= 0 || p.MaxDischargeMW <= 0:
		return fmt.Errorf("%w: charge and discharge limits must be >0", ErrInvalidParams)
	case p.ElectrolyserKWhPerKg <= 0:
		return fmt.Errorf("%w: electrolyser_kwh_per_kg must be >0", ErrInvalidParams)
	case p.ArbitrageThresholdINR <= 0:
		return fmt.Errorf("%w: arbitrage_threshold_inr must be >0", ErrInvalidParams)
	case p.ArbitrageStepMW <= 0:
		return fmt.Errorf("%w: arbitrage_step_mw must be >0", ErrInvalidParams)
	}
	for i, b := range p.PriceBands {
		if b.From > b.To {
			return fmt.Errorf("%w: price band %d has from > to", ErrInvalidParams, i)
		}
		if b.Base <= 0 || b.Spread < 0 {
			return fmt.Errorf("%w: price band %d must have base >0 and spread >=0", ErrInvalidParams, i)
		}
	}
	return nil
}
