// Package assets provides the asset status snapshot and the BESS rack cell
// matrix served to the maintenance view.
package assets

import (
	"encoding/json"
	"fmt"

	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

const (
	// RackCells is the number of cells shown for one rack.
	RackCells = 64
	// Rack is the cluster the generated cells belong to.
	Rack = "Rack-04"
	// HotCellIndex is the cell generated with a wider temperature spread.
	HotCellIndex = 42

	warnTempC     = 35
	criticalTempC = 45
)

// Status returns the current snapshot of the park assets.
func Status() []model.AssetStatus {
	return []model.AssetStatus{
		{ID: "PV-01", Name: "Solar Arrays", Type: model.AssetSolar, Status: model.StateOnline, Output: 320, Capacity: 400, Efficiency: 98, Temperature: 45},
		// Efficiency carries the state of charge for the BESS.
		{ID: "BESS-01", Name: "LFP Battery Storage", Type: model.AssetBESS, Status: model.StateOnline, Output: 120, Capacity: 500, Efficiency: 65, Temperature: 28},
		{ID: "H2-01", Name: "PEM Electrolyzers", Type: model.AssetH2, Status: model.StateOnline, Output: 450, Capacity: 50, Efficiency: 72, Temperature: 60},
	}
}

// Find returns the first asset of the given type.
func Find(list []model.AssetStatus, typ model.AssetType) (model.AssetStatus, bool) {
	for _, a := range list {
		if a.Type == typ {
			return a, true
		}
	}
	return model.AssetStatus{}, false
}

// Cells generates n mock cells of the rack. One cell runs hotter than the
// others.
func Cells(rng simulator.RandomSource, n int) []model.BESSCell {
	cells := make([]model.BESSCell, n)
	for i := range cells {
		tempSpread := 5.0
		if i == HotCellIndex {
			tempSpread = 25
		}
		cells[i] = model.BESSCell{
			ID:      fmt.Sprintf("C-%d", 100+i),
			Voltage: simulator.Round(3.2+rng.Float64()*0.4, 3),
			Temp:    simulator.Round(25+rng.Float64()*tempSpread, 1),
			SoC:     simulator.Round(60+rng.Float64()*5, 1),
			SoH:     simulator.Round(98-rng.Float64()*2, 1),
			Cluster: Rack,
		}
	}
	return cells
}

// FindCell returns the cell with the given id.
func FindCell(cells []model.BESSCell, id string) (model.BESSCell, bool) {
	for _, c := range cells {
		if c.ID == id {
			return c, true
		}
	}
	return model.BESSCell{}, false
}

// ThermalState classifies a cell temperature for the thermal matrix.
func ThermalState(c model.BESSCell) model.AssetState {
	switch {
	case c.Temp > criticalTempC:
		return model.StateCritical
	case c.Temp > warnTempC:
		return model.StateWarning
	default:
		return model.StateOnline
	}
}

// AlertContext renders the cell as the alert payload sent for diagnosis.
func AlertContext(c model.BESSCell) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode cell %s: %w", c.ID, err)
	}
	return string(b), nil
}
