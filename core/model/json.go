package model

import "encoding/json"

// MarshalJSON encodes the plan with its records.
func (p DayPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayPlanJSON{ID: p.ID, GeneratedAt: p.GeneratedAt, Records: p.records})
}

// UnmarshalJSON decodes a plan previously encoded with MarshalJSON.
func (p *DayPlan) UnmarshalJSON(b []byte) error {
	var raw dayPlanJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = NewDayPlan(raw.ID, raw.GeneratedAt, raw.Records)
	return nil
}
