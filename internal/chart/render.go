package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/radiative-forcing-dashboard/internal/domain"
)

// RGBA equivalents of the figure palette.
var (
	rgbaIncreasing = color.RGBA{R: 0x8F, G: 0x27, B: 0x38, A: 0xFF}
	rgbaDecreasing = color.RGBA{R: 0x5E, G: 0x8D, B: 0xB0, A: 0xFF}
	rgbaTotal      = color.RGBA{R: 0xFF, G: 0xB0, B: 0x1F, A: 0xFF}
	rgbaTotalLine  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF} // gold
	rgbaConnector  = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

const (
	renderWidth  = 10 * vg.Inch
	renderHeight = 5 * vg.Inch

	// Bar width as a fraction of the unit slot per category.
	barHalfWidth = 0.35
)

// RenderPNG draws the waterfall for rows as a PNG image. It mirrors the
// client-side figure: relative bars float at the running total, total bars
// span from zero, connectors link the step levels between bars.
func RenderPNG(w io.Writer, rows []domain.Record) error {
	p := plot.New()
	p.Title.Text = "Radiative Forcing"
	p.Y.Label.Text = yAxisTitle

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Source
	}
	p.NominalX(labels...)
	p.Add(newWaterfall(rows))

	wt, err := p.WriterTo(renderWidth, renderHeight, "png")
	if err != nil {
		return fmt.Errorf("render waterfall: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write waterfall png: %w", err)
	}
	return nil
}

// segment is one bar of the waterfall in data coordinates.
type segment struct {
	x        int
	lo, hi   float64
	fill     color.Color
	outlined bool
	// level is the running total after this bar, where the connector to the
	// next bar attaches.
	level float64
}

// waterfall is a plot.Plotter drawing floating bars with connectors.
// gonum/plot has no built-in waterfall, so this follows the shape of its
// own plotter.BarChart: Plot transforms data coordinates through the axes
// and fills one polygon per bar.
type waterfall struct {
	segments []segment
}

// newWaterfall converts records into drawable segments, accumulating the
// running total. Any measure other than "total" is treated as a relative
// delta, matching the lenient client-side handling of unknown kinds.
func newWaterfall(rows []domain.Record) *waterfall {
	wf := &waterfall{segments: make([]segment, 0, len(rows))}
	run := 0.0
	for i, r := range rows {
		var seg segment
		if r.Measure == domain.MeasureTotal {
			seg = segment{x: i, lo: min(0, run), hi: max(0, run), fill: rgbaTotal, outlined: true, level: run}
		} else {
			lo, hi := run, run+r.Contribution
			if lo > hi {
				lo, hi = hi, lo
			}
			fill := rgbaIncreasing
			if r.Contribution < 0 {
				fill = rgbaDecreasing
			}
			run += r.Contribution
			seg = segment{x: i, lo: lo, hi: hi, fill: fill, level: run}
		}
		wf.segments = append(wf.segments, seg)
	}
	return wf
}

// Plot implements plot.Plotter.
func (wf *waterfall) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	connSty := draw.LineStyle{Color: rgbaConnector, Width: vg.Points(1)}
	outlineSty := draw.LineStyle{Color: rgbaTotalLine, Width: vg.Points(3)}

	for i, seg := range wf.segments {
		x0 := trX(float64(seg.x) - barHalfWidth)
		x1 := trX(float64(seg.x) + barHalfWidth)
		y0 := trY(seg.lo)
		y1 := trY(seg.hi)

		poly := []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		}
		c.FillPolygon(seg.fill, poly)
		if seg.outlined {
			c.StrokeLines(outlineSty, append(poly, poly[0]))
		}

		if i+1 < len(wf.segments) {
			y := trY(seg.level)
			c.StrokeLine2(connSty, x1, y, trX(float64(seg.x+1)-barHalfWidth), y)
		}
	}
}

// DataRange implements plot.DataRanger so the axes cover every bar plus the
// zero baseline.
func (wf *waterfall) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(wf.segments) == 0 {
		return 0, 1, 0, 1
	}

	xmin, xmax = -0.5, float64(len(wf.segments)-1)+0.5
	ymin, ymax = 0, 0
	for _, seg := range wf.segments {
		ymin = min(ymin, seg.lo)
		ymax = max(ymax, seg.hi)
	}
	return xmin, xmax, ymin, ymax
}
