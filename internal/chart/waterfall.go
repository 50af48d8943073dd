// Package chart builds waterfall chart specifications from forcing records.
//
// BuildFigure produces a Plotly-compatible figure document rendered
// client-side by the dashboard page; RenderPNG draws the same waterfall
// server-side for the image export route.
package chart

import (
	"strconv"

	"github.com/couchcryptid/radiative-forcing-dashboard/internal/domain"
)

// Fixed styling. One color each for increasing bars, decreasing bars, and
// total bars, plus one for the connecting lines between bars.
const (
	colorIncreasing = "#8F2738"
	colorDecreasing = "#5E8DB0"
	colorTotal      = "#ffb01f"
	colorTotalLine  = "gold"
	colorConnector  = "#C0C0C0"

	yAxisTitle = "W/m²"
)

// Line styles a stroke.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width,omitempty"`
}

// Marker styles a bar fill and optional outline.
type Marker struct {
	Color string `json:"color"`
	Line  *Line  `json:"line,omitempty"`
}

// BarStyle wraps a Marker the way the waterfall trace schema expects.
type BarStyle struct {
	Marker Marker `json:"marker"`
}

// Connector styles the lines linking consecutive bars.
type Connector struct {
	Line Line `json:"line"`
}

// Trace is a single vertical waterfall trace. One entry per filtered row,
// index-aligned across Measure, X, Y, and Text.
type Trace struct {
	Type         string    `json:"type"`
	Orientation  string    `json:"orientation"`
	Measure      []string  `json:"measure"`
	X            []string  `json:"x"`
	Y            []float64 `json:"y"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition"`
	Increasing   BarStyle  `json:"increasing"`
	Decreasing   BarStyle  `json:"decreasing"`
	Totals       BarStyle  `json:"totals"`
	Connector    Connector `json:"connector"`
}

// AxisTitle labels an axis.
type AxisTitle struct {
	Text string `json:"text"`
}

// Axis configures one chart axis.
type Axis struct {
	Visible bool      `json:"visible"`
	Title   AxisTitle `json:"title"`
}

// Layout holds figure-level presentation settings.
type Layout struct {
	YAxis Axis `json:"yaxis"`
}

// Figure is a complete chart specification.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// BuildFigure constructs the waterfall specification for the given rows.
// It is a pure function: the same rows always produce the same figure, and
// zero rows produce a valid figure with no bars.
func BuildFigure(rows []domain.Record) Figure {
	trace := Trace{
		Type:         "waterfall",
		Orientation:  "v",
		Measure:      make([]string, 0, len(rows)),
		X:            make([]string, 0, len(rows)),
		Y:            make([]float64, 0, len(rows)),
		Text:         make([]string, 0, len(rows)),
		TextPosition: "inside",
		Increasing:   BarStyle{Marker: Marker{Color: colorIncreasing}},
		Decreasing:   BarStyle{Marker: Marker{Color: colorDecreasing}},
		Totals: BarStyle{Marker: Marker{
			Color: colorTotal,
			Line:  &Line{Color: colorTotalLine, Width: 3},
		}},
		Connector: Connector{Line: Line{Color: colorConnector}},
	}

	for _, r := range rows {
		trace.Measure = append(trace.Measure, string(r.Measure))
		trace.X = append(trace.X, r.Source)
		trace.Y = append(trace.Y, r.Contribution)
		trace.Text = append(trace.Text, formatContribution(r.Contribution))
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			YAxis: Axis{Visible: true, Title: AxisTitle{Text: yAxisTitle}},
		},
	}
}

// formatContribution echoes a contribution as the bar's inside label, with
// the shortest exact decimal form (1.66 → "1.66", -0.2 → "-0.2").
func formatContribution(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
