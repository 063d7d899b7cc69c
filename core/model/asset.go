package model

// AssetType identifies the kind of park asset.
type AssetType string

const (
	AssetSolar AssetType = "SOLAR"
	AssetBESS  AssetType = "BESS"
	AssetH2    AssetType = "H2"
	AssetGrid  AssetType = "GRID"
)

func (t AssetType) String() string { return string(t) }

// AssetState is the operational state reported for an asset.
type AssetState string

const (
	StateOnline   AssetState = "ONLINE"
	StateWarning  AssetState = "WARNING"
	StateCritical AssetState = "CRITICAL"
	StateOffline  AssetState = "OFFLINE"
)

func (s AssetState) String() string { return string(s) }

// AssetStatus is a snapshot of one asset. For the BESS, Efficiency carries the
// state of charge in percent.
type AssetStatus struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        AssetType  `json:"type"`
	Status      AssetState `json:"status"`
	Efficiency  float64    `json:"efficiency"`
	Temperature float64    `json:"temperature"`
	Output      float64    `json:"output"`   // MW or kg/hr
	Capacity    float64    `json:"capacity"` // max MW
}

// BESSCell holds the telemetry of one battery cell.
type BESSCell struct {
	ID      string  `json:"id"`
	Cluster string  `json:"cluster"`
	Voltage float64 `json:"voltage"`
	Temp    float64 `json:"temp"`
	SoC     float64 `json:"soc"`
	SoH     float64 `json:"soh"`
}
