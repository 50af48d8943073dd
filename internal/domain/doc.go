// Package domain models the radiative forcing budget dataset.
//
// # Data Source
//
// The dataset is a flat CSV (rf_data.csv) with one row per forcing agent,
// columns Source, Measure, Contribution. Values are effective radiative
// forcing estimates in W/m² relative to the pre-industrial baseline, as
// published in the IPCC assessment report summaries.
//
// # Conventions
//
// Measure kinds:
//
//	"relative" — the row is a signed delta contributed by one forcing agent.
//	"total"    — the row is a running or grand total bar in the waterfall
//	             (e.g. "Net total").
//
// Measure values are deliberately not validated: an unexpected kind passes
// through to the chart stage unchanged and renders however the charting
// library interprets it. The dataset is trusted, editorial content shipped
// with the binary, not user input.
//
// Sign convention:
//
//	Positive contributions (e.g. Carbon Dioxide) trap energy and warm the
//	surface; negative contributions (e.g. Cloud Albedo Effect) reflect
//	energy and cool it.
//
// # Immutability
//
// A Dataset is built once at process startup and never mutated. Accessors
// return copies so callers cannot alias the backing slice. Filtering produces
// a transient, order-preserving subset on every call.
package domain
