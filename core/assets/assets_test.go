package assets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

func TestStatus(t *testing.T) {
	list := Status()
	require.Len(t, list, 3)
	bess, ok := Find(list, model.AssetBESS)
	require.True(t, ok)
	assert.Equal(t, "BESS-01", bess.ID)
	assert.Equal(t, 65.0, bess.Efficiency)
	_, ok = Find(list, model.AssetGrid)
	assert.False(t, ok)

	list[0].Output = 0
	assert.Equal(t, 320.0, Status()[0].Output)
}

func TestCellsRanges(t *testing.T) {
	cells := Cells(rand.New(rand.NewSource(5)), RackCells)
	require.Len(t, cells, RackCells)
	assert.Equal(t, "C-100", cells[0].ID)
	assert.Equal(t, "C-163", cells[63].ID)
	for i, c := range cells {
		assert.Equal(t, Rack, c.Cluster)
		assert.GreaterOrEqual(t, c.Voltage, 3.2)
		assert.LessOrEqual(t, c.Voltage, 3.6)
		assert.GreaterOrEqual(t, c.SoC, 60.0)
		assert.LessOrEqual(t, c.SoC, 65.0)
		assert.GreaterOrEqual(t, c.SoH, 96.0)
		assert.LessOrEqual(t, c.SoH, 98.0)
		if i != HotCellIndex {
			assert.LessOrEqual(t, c.Temp, 30.0)
		}
	}
}

func TestHotCellIsCritical(t *testing.T) {
	cells := Cells(simulator.FixedSource(0.9), RackCells)
	hot, ok := FindCell(cells, "C-142")
	require.True(t, ok)
	assert.Equal(t, 47.5, hot.Temp)
	assert.Equal(t, model.StateCritical, ThermalState(hot))
	assert.Equal(t, model.StateOnline, ThermalState(cells[0]))
	assert.Equal(t, model.StateWarning, ThermalState(model.BESSCell{Temp: 40}))

	_, ok = FindCell(cells, "C-999")
	assert.False(t, ok)
}

func TestAlertContext(t *testing.T) {
	s, err := AlertContext(model.BESSCell{ID: "C-142", Cluster: Rack, Temp: 47.5})
	require.NoError(t, err)
	assert.Contains(t, s, `"id":"C-142"`)
	assert.Contains(t, s, `"temp":47.5`)
}
