package domain

// Measure classifies how a row participates in the waterfall.
type Measure string

// Waterfall bar kinds. Stored as-is from the CSV; see the package doc for
// why unknown values are not rejected.
const (
	MeasureRelative Measure = "relative"
	MeasureTotal    Measure = "total"
)

// Record is a single forcing agent's entry in the budget.
type Record struct {
	Source       string  `json:"source"`
	Measure      Measure `json:"measure"`
	Contribution float64 `json:"contribution"` // W/m²
}

// DefaultSelection returns the source labels pre-checked on first page load:
// the headline greenhouse gases, one land-use term, the only fully natural
// agent, and the grand total.
func DefaultSelection() []string {
	return []string{
		"Carbon Dioxide",
		"Methane",
		"Albedo (Land use)",
		"Solar irradiance",
		"Net total",
	}
}
