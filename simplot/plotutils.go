package simplot

//Some internal convenience functions.

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//DefaultDPI is the resolution of the saved images.
const DefaultDPI = 300

var (
	SkyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	RoyalBlue  = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	DarkOrange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red        = color.RGBA{R: 255, A: 255}
)

//Save renders p in a width x height PNG with the given resolution (DefaultDPI if dpi<=0).
//The directory for name is created if needed.
func Save(p *plot.Plot, width, height vg.Length, dpi int, name string) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("simplot.Save: %w", err)
		}
	}
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("simplot.Save: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("simplot.Save: %w", err)
	}
	return f.Close()
}

//usable returns true if v can be drawn. On log axes, only positive
//values can.
func usable(v float64, logscale bool) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return !logscale || v > 0
}

//xys returns the points in x,y that can be drawn.
func xys(x, y []float64, logscale bool) plotter.XYs {
	ret := make(plotter.XYs, 0, len(x))
	for i, v := range x {
		if usable(v, logscale) && usable(y[i], logscale) {
			ret = append(ret, plotter.XY{X: v, Y: y[i]})
		}
	}
	return ret
}

//errPoints fulfills the interface needed by plotter.NewYErrorBars
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

//newErrPoints returns the points in x,y that can be drawn, with symmetric error bars
//of half-size yerr. On log axes, the lower bar is clipped so it stays above zero.
func newErrPoints(x, y, yerr []float64, logscale bool) errPoints {
	var ret errPoints
	for i, v := range x {
		if !usable(v, logscale) || !usable(y[i], logscale) {
			continue
		}
		e := 0.0
		if yerr != nil && !math.IsNaN(yerr[i]) && !math.IsInf(yerr[i], 0) {
			e = math.Abs(yerr[i])
		}
		low := e
		if logscale && low >= y[i] {
			low = 0.9 * y[i]
		}
		ret.XYs = append(ret.XYs, plotter.XY{X: v, Y: y[i]})
		ret.YErrors = append(ret.YErrors, struct{ Low, High float64 }{low, e})
	}
	return ret
}

//logLog puts both axes of p in log scale.
func logLog(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

//basicPlot returns a new plot with a title, axis labels and a grid.
func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}
