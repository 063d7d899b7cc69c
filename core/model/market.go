package model

// BidType is the market segment of a bid.
type BidType string

const (
	BidDAM       BidType = "DAM"
	BidRTM       BidType = "RTM"
	BidAncillary BidType = "ANCILLARY"
)

// BidStatus is the clearing state of a bid.
type BidStatus string

const (
	BidAccepted BidStatus = "ACCEPTED"
	BidPending  BidStatus = "PENDING"
	BidRejected BidStatus = "REJECTED"
)

// MarketBid is one block offered on the power exchange.
type MarketBid struct {
	TimeBlock  string    `json:"timeBlock"`
	QuantityMW float64   `json:"quantityMW"`
	PriceINR   float64   `json:"priceINR"`
	Type       BidType   `json:"type"`
	Status     BidStatus `json:"status"`
}

// RevenueStream is one line of the projected daily revenue mix, in thousand INR.
type RevenueStream struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
