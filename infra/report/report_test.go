package report

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/hybridpark/core/dashboard"
	"github.com/kilianp07/hybridpark/core/simulator"
)

func testPlan(t *testing.T) (dashboard.KPI, []byte, []byte) {
	t.Helper()
	sim, err := simulator.New(simulator.DefaultParams(), simulator.FixedSource(0.5))
	require.NoError(t, err)
	plan := sim.Run(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	kpi := dashboard.Summary(plan, 9)

	x, err := BuildPlanXLSX(plan, kpi)
	require.NoError(t, err)
	p, err := BuildPlanPDF(plan, kpi)
	require.NoError(t, err)
	return kpi, x, p
}

func TestBuildPlanXLSX(t *testing.T) {
	kpi, data, _ := testPlan(t)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, hoursSheet}, f.GetSheetList())
	rows, err := f.GetRows(hoursSheet)
	require.NoError(t, err)
	require.Len(t, rows, 25)
	assert.Equal(t, "Time", rows[0][0])
	assert.Equal(t, "13:00", rows[14][0])
	assert.Equal(t, "200", rows[14][3])

	v, err := f.GetCellValue(summarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(kpi.ArbitrageHours), v)
}

func TestBuildPlanPDF(t *testing.T) {
	_, _, data := testPlan(t)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
