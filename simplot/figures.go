/*
 * figures.go, part of polyplot
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

package simplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Labels for a figure
type Labels struct {
	Title  string
	X      string
	Y      string
	Data   string //legend for the simulation data
	Theory string //legend for the theoretical curve
}

//Curve is a theoretical curve. A nil Curve, or one with no points, is not drawn.
type Curve struct {
	X []float64
	Y []float64
}

//Points are simulation results with their errors. Err can be nil.
type Points struct {
	X   []float64
	Y   []float64
	Err []float64
}

//Bars is a histogram with variable bin widths, drawn centered on X.
type Bars struct {
	X      []float64
	Widths []float64
	Y      []float64
}

func (C *Curve) empty() bool {
	return C == nil || len(C.X) == 0
}

//Histogram produces a bar plot for the histogram in b, with the bars centered on
//the b.X values. Bars with heights that can't be drawn (say, the log of an empty bin)
//are omitted. If theory is not nil, it is drawn as a red line.
func Histogram(l Labels, b Bars, theory *Curve) (*plot.Plot, error) {
	if len(b.X) != len(b.Y) || len(b.X) != len(b.Widths) {
		return nil, fmt.Errorf("simplot.Histogram: %d centers, %d widths and %d heights", len(b.X), len(b.Widths), len(b.Y))
	}
	p := basicPlot(l.Title, l.X, l.Y)
	bins := make([]plotter.HistogramBin, 0, len(b.X))
	ymin, ymax := 0.0, 0.0
	for i, v := range b.X {
		if !usable(b.Y[i], false) {
			continue
		}
		bins = append(bins, plotter.HistogramBin{Min: v - b.Widths[i]/2, Max: v + b.Widths[i]/2, Weight: b.Y[i]})
		ymin = math.Min(ymin, b.Y[i])
		ymax = math.Max(ymax, b.Y[i])
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("simplot.Histogram: no bar can be drawn")
	}
	h := &plotter.Histogram{Bins: bins, FillColor: SkyBlue, LineStyle: plotter.DefaultLineStyle}
	p.Add(h)
	p.Legend.Add(l.Data, h)
	if !theory.empty() {
		pts := xys(theory.X, theory.Y, false)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = Red
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(l.Theory, line)
		for _, v := range pts {
			ymin = math.Min(ymin, v.Y)
			ymax = math.Max(ymax, v.Y)
		}
	}
	//the bars go down to zero, or up to it, for log heights.
	p.Y.Min = ymin
	p.Y.Max = ymax
	return p, nil
}

//Style sets the look of a Comparison plot.
type Style struct {
	DataColor   color.Color
	TheoryColor color.Color
	Dashed      bool //dashed theory line
	LogLog      bool
}

//Comparison plots the points in data with error bars and circles, and the theory curve as a line.
//With style.LogLog, both axes are logarithmic, and points that are not positive are left out.
func Comparison(l Labels, data Points, theory *Curve, style Style) (*plot.Plot, error) {
	if len(data.X) != len(data.Y) || (data.Err != nil && len(data.Err) != len(data.X)) {
		return nil, fmt.Errorf("simplot.Comparison: ill-formed data")
	}
	if style.DataColor == nil {
		style.DataColor = RoyalBlue
	}
	if style.TheoryColor == nil {
		style.TheoryColor = Red
	}
	p := basicPlot(l.Title, l.X, l.Y)
	if style.LogLog {
		logLog(p)
	}
	s, e, line, err := comparisonPlotters(data, theory, style)
	if err != nil {
		return nil, err
	}
	p.Add(e, s)
	p.Legend.Add(l.Data, s)
	if line != nil {
		p.Add(line)
		p.Legend.Add(l.Theory, line)
	}
	return p, nil
}

//comparisonPlotters builds the scatter, error bars and theory line (nil if there is nothing
//to draw) for Comparison.
func comparisonPlotters(data Points, theory *Curve, style Style) (*plotter.Scatter, *plotter.YErrorBars, *plotter.Line, error) {
	pts := newErrPoints(data.X, data.Y, data.Err, style.LogLog)
	if len(pts.XYs) == 0 {
		return nil, nil, nil, fmt.Errorf("simplot.Comparison: no data point can be drawn")
	}
	s, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, nil, nil, err
	}
	s.GlyphStyle.Color = style.DataColor
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	e, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, nil, nil, err
	}
	e.LineStyle.Color = style.DataColor
	e.LineStyle.Width = vg.Points(1.2)
	e.CapWidth = vg.Points(8)
	if theory.empty() {
		return s, e, nil, nil
	}
	tpts := xys(theory.X, theory.Y, style.LogLog)
	if len(tpts) == 0 {
		return s, e, nil, nil
	}
	line, err := plotter.NewLine(tpts)
	if err != nil {
		return nil, nil, nil, err
	}
	line.LineStyle.Color = style.TheoryColor
	line.LineStyle.Width = vg.Points(2)
	if style.Dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	}
	return s, e, line, nil
}
