package market

import (
	"encoding/json"
	"net/http"

	"github.com/kilianp07/hybridpark/core/market"
)

// StrategyInfo describes one bidding strategy.
type StrategyInfo struct {
	Name        market.Strategy `json:"name"`
	Description string          `json:"description"`
}

// NewBidsHandler exposes the bid book via GET /api/market/bids.
func NewBidsHandler() http.Handler {
	return getJSON(func(*http.Request) (any, int) { return market.Bids(), http.StatusOK })
}

// NewRevenueHandler exposes the revenue mix via GET /api/market/revenue.
func NewRevenueHandler() http.Handler {
	return getJSON(func(*http.Request) (any, int) { return market.RevenueMix(), http.StatusOK })
}

// NewStrategyHandler exposes the bidding strategies via GET /api/market/strategies.
// With ?name= it returns the matching strategy only.
func NewStrategyHandler() http.Handler {
	return getJSON(func(r *http.Request) (any, int) {
		name := r.URL.Query().Get("name")
		if name != "" {
			s, err := market.ParseStrategy(name)
			if err != nil {
				return map[string]string{"error": err.Error()}, http.StatusBadRequest
			}
			return StrategyInfo{Name: s, Description: s.Description()}, http.StatusOK
		}
		out := make([]StrategyInfo, len(market.Strategies))
		for i, s := range market.Strategies {
			out[i] = StrategyInfo{Name: s, Description: s.Description()}
		}
		return out, http.StatusOK
	})
}

func getJSON(body func(*http.Request) (any, int)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		v, code := body(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	})
}
