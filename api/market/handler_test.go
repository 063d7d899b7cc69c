package market

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/hybridpark/core/market"
	"github.com/kilianp07/hybridpark/core/model"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestBidsHandler(t *testing.T) {
	rr := get(t, NewBidsHandler(), "/api/market/bids")
	require.Equal(t, http.StatusOK, rr.Code)
	var bids []model.MarketBid
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bids))
	assert.Len(t, bids, 5)
	assert.Equal(t, model.BidAncillary, bids[4].Type)
}

func TestRevenueHandler(t *testing.T) {
	rr := get(t, NewRevenueHandler(), "/api/market/revenue")
	require.Equal(t, http.StatusOK, rr.Code)
	var mix []model.RevenueStream
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mix))
	require.Len(t, mix, 4)
	assert.Equal(t, 450.0, mix[0].Value)
}

func TestStrategyHandler(t *testing.T) {
	rr := get(t, NewStrategyHandler(), "/api/market/strategies")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []StrategyInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, len(market.Strategies))

	rr = get(t, NewStrategyHandler(), "/api/market/strategies?name=firm_contract")
	require.Equal(t, http.StatusOK, rr.Code)
	var one StrategyInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &one))
	assert.Equal(t, market.StrategyFirmContract, one.Name)
	assert.NotEmpty(t, one.Description)

	rr = get(t, NewStrategyHandler(), "/api/market/strategies?name=yolo")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
