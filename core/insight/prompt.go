package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianp07/hybridpark/core/model"
)

// SystemInstruction sets the persona and output format of the assistant.
const SystemInstruction = `
You are Param, the advanced AI Controller for a 500MW Solar + 1GWh BESS + 50MW Electrolyzer hybrid park in Gujarat, India.

Your goal is to optimize for:
1. Firm Power Delivery (SECI mandates).
2. Revenue Maximization (Arbitrage on IEX, H2 Sales).
3. Asset Health (Predictive Maintenance).

Output Format Guidelines:
- Use "### " for section headers (e.g., ### Strategy, ### Risks).
- Use "**" for bold text to highlight key metrics or actions.
- Use bullet points ("- ") for lists.
- Be concise, technical, and direct.
- Do not use markdown code blocks.

When analyzing data:
- Use units (MW, INR/kWh, %).
- Provide actionable recommendations.
- Focus on the Indian energy market context (VGF, RDSS, DAM/RTM).
`

const (
	EnergyFallbackText    = "Param AI Service temporarily unavailable. Falling back to local heuristic optimization."
	DiagnosisFallbackText = "Unable to process diagnostic data."

	emptyEnergyText    = "No analysis available."
	emptyDiagnosisText = "No diagnosis available."

	// RecommendedReview is attached to every successful energy analysis.
	RecommendedReview = "Review dispatch schedule."

	energyConfidence    = 0.95
	diagnosisConfidence = 0.92
)

// RecordContext describes a single hourly record for the model.
func RecordContext(r model.HourlyRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Timestamp: %s\n", r.HourLabel)
	fmt.Fprintf(&b, "Solar Generation: %s MW\n", num(r.SolarMW))
	fmt.Fprintf(&b, "Grid Export: %s MW\n", num(r.GridExportMW))
	fmt.Fprintf(&b, "BESS Charge Power: %s MW\n", num(r.BESSChargeMW))
	fmt.Fprintf(&b, "Market Price: ₹%s/kWh\n", num(r.MarketPriceINR))
	return b.String()
}

// EnergyPrompt wraps a context description into the analysis request.
func EnergyPrompt(context string) string {
	return "Current System State and Market Data:\n" + context +
		"\n\nProvide an optimization strategy and risk assessment for the next 4 hours."
}

// DiagnosisPrompt wraps alert data into the diagnosis request.
func DiagnosisPrompt(alert string) string {
	return "Alert Data Detected:\n" + alert +
		"\n\nDiagnose the root cause (e.g., Thermal Runaway risk, Inverter IGBT failure) and suggest immediate mitigation steps using digital twin logic."
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
