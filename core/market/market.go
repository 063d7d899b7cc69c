// Package market exposes the bidding strategies, the mock bid book and the
// projected revenue mix of the park.
package market

import (
	"fmt"
	"strings"

	"github.com/kilianp07/hybridpark/core/model"
)

// Strategy selects how the park bids on the exchange.
type Strategy string

const (
	StrategyFirmContract        Strategy = "FIRM_CONTRACT"
	StrategyBalanced            Strategy = "BALANCED"
	StrategyAggressiveArbitrage Strategy = "AGGRESSIVE_ARBITRAGE"
)

// Strategies lists the strategies in display order.
var Strategies = []Strategy{StrategyFirmContract, StrategyBalanced, StrategyAggressiveArbitrage}

// Description returns the operator-facing summary of the strategy.
func (s Strategy) Description() string {
	switch s {
	case StrategyFirmContract:
		return "Strict 200MW flat profile. Low risk, moderate return."
	case StrategyBalanced:
		return "Base load + Peak shifting. H2 overflow enabled."
	case StrategyAggressiveArbitrage:
		return "Chase price spikes. Higher risk, max potential yield."
	default:
		return ""
	}
}

// ParseStrategy parses a strategy name, case-insensitively. An empty name
// selects the balanced strategy.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyBalanced, nil
	}
	st := Strategy(strings.ToUpper(s))
	for _, known := range Strategies {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Bids returns the current bid book.
func Bids() []model.MarketBid {
	return []model.MarketBid{
		{TimeBlock: "10:00", QuantityMW: 150, PriceINR: 3.5, Type: model.BidDAM, Status: model.BidAccepted},
		{TimeBlock: "10:15", QuantityMW: 160, PriceINR: 3.4, Type: model.BidDAM, Status: model.BidAccepted},
		{TimeBlock: "18:00", QuantityMW: 200, PriceINR: 8.5, Type: model.BidRTM, Status: model.BidPending},
		{TimeBlock: "18:15", QuantityMW: 200, PriceINR: 9.1, Type: model.BidRTM, Status: model.BidPending},
		{TimeBlock: "19:00", QuantityMW: 50, PriceINR: 12.0, Type: model.BidAncillary, Status: model.BidPending},
	}
}

// RevenueMix returns the projected daily revenue stack in thousand INR.
func RevenueMix() []model.RevenueStream {
	return []model.RevenueStream{
		{Name: "Solar PPA", Value: 450},
		{Name: "BESS Arbitrage", Value: 320},
		{Name: "H2 Sales", Value: 150},
		{Name: "Ancillary", Value: 80},
	}
}
