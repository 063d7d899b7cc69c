package model

import "time"

// Insight is the prose analysis returned by the insight service.
type Insight struct {
	ID                string    `json:"id"`
	Text              string    `json:"text"`
	Timestamp         time.Time `json:"timestamp"`
	Confidence        float64   `json:"confidence"`
	RecommendedAction string    `json:"recommendedAction,omitempty"`
}

// Fallback reports whether the insight is the static substitute payload.
func (i Insight) Fallback() bool { return i.Confidence == 0 }
