package market

import (
	"testing"

	"github.com/kilianp07/hybridpark/core/model"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"":                     StrategyBalanced,
		"firm_contract":        StrategyFirmContract,
		"AGGRESSIVE_ARBITRAGE": StrategyAggressiveArbitrage,
	}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Errorf("parse %q = %s, want %s", in, got, want)
		}
		if got.Description() == "" {
			t.Errorf("missing description for %s", got)
		}
	}
	if _, err := ParseStrategy("yolo"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestBids(t *testing.T) {
	bids := Bids()
	if len(bids) != 5 {
		t.Fatalf("expected 5 bids, got %d", len(bids))
	}
	pending := 0
	for _, b := range bids {
		if b.Status == model.BidPending {
			pending++
		}
	}
	if pending != 3 {
		t.Fatalf("expected 3 pending bids, got %d", pending)
	}
}

func TestRevenueMix(t *testing.T) {
	total := 0.0
	for _, r := range RevenueMix() {
		total += r.Value
	}
	if total != 1000 {
		t.Fatalf("unexpected revenue total %v", total)
	}
}
