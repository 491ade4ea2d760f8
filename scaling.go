package polyplot

import (
	"log"

	"github.com/rmera/polyplot/simplot"
	"github.com/rmera/polyplot/textdata"
	"github.com/rmera/polyplot/theory"
)

//Scaling plots the radius of gyration measured for chains of different N, read from an
//(N, Rg[, error]) table, against the ideal chain value b*sqrt((N^2-1)/(6N)) at the same N.
//A table with a single row is fine. The figure is saved only if C.Save is true,
//and the name of the saved file is returned (empty otherwise).
//Nothing is displayed.
func Scaling(C *ScalingConfig) (string, error) {
	C.SetDefaults()
	T, err := textdata.LoadColumnsFile(C.Input, 2, 0)
	if err != nil {
		msg := InputError
		if IsNotFound(err) {
			msg = InputMissing
		}
		return "", Error{msg, C.Input, []string{"Scaling"}, true, err}
	}
	data, curve := scalingSeries(C.B, T)
	labels := simplot.Labels{
		Title:  C.Title,
		X:      "Number of monomers (N)",
		Y:      "Rg (reduced units)",
		Data:   "Simulation",
		Theory: "Theory: Rg = b sqrt((N^2-1)/(6N))",
	}
	style := simplot.Style{DataColor: simplot.RoyalBlue, TheoryColor: simplot.DarkOrange, Dashed: true, LogLog: C.LogLog}
	p, err := simplot.Comparison(labels, data, curve, style)
	if err != nil {
		return "", Error{PlotError, C.Input, []string{"Scaling"}, true, err}
	}
	if !C.Save {
		return "", nil
	}
	target := C.SavePath()
	if err := simplot.Save(p, C.Width, C.Height, C.DPI, target); err != nil {
		return "", Error{SaveError, target, []string{"Scaling"}, true, err}
	}
	log.Printf("Figure saved in: %s", target)
	return target, nil
}

//scalingSeries returns the measured points in T and the ideal chain values, for bond
//length b, at the same N values.
func scalingSeries(b float64, T *textdata.Table) (simplot.Points, *simplot.Curve) {
	n := T.Col(0)
	data := simplot.Points{X: n, Y: T.Col(1), Err: T.Col(2)} //Col gives zeros if there is no error column
	return data, &simplot.Curve{X: n, Y: theory.GyrationCurve(b, n)}
}
