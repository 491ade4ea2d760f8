//Package theory evaluates the closed-form reference curves that the
//simulation results are compared against.
package theory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//Eps is added to the force in the 1/f term of the Langevin function, so f=0
//does not divide by zero.
const Eps = 1e-9

//Langevin returns the mean end-to-end distance along the force of a freely jointed
//chain of n beads (n-1 unit bonds) under a reduced force f: (n-1)(coth(f) - 1/f).
func Langevin(n int, f float64) float64 {
	//1/tanh instead of cosh/sinh, which overflow to Inf/Inf above f~710.
	return float64(n-1) * (1/math.Tanh(f) - 1/(f+Eps))
}

//LangevinCurve evaluates Langevin at each force in f. The results go to dest
//if it is given and long enough.
func LangevinCurve(n int, f []float64, dest ...[]float64) []float64 {
	ret := getSlice(len(f), dest...)
	for i, v := range f {
		ret[i] = Langevin(n, v)
	}
	return ret
}

//GyrationRadius returns the radius of gyration of an ideal chain of n beads
//with bond length b: b*sqrt((n^2-1)/(6n)).
func GyrationRadius(b, n float64) float64 {
	return b * math.Sqrt((n*n-1)/(6*n))
}

//GyrationCurve evaluates GyrationRadius at each n given, with no resampling.
func GyrationCurve(b float64, n []float64, dest ...[]float64) []float64 {
	ret := getSlice(len(n), dest...)
	for i, v := range n {
		ret[i] = GyrationRadius(b, v)
	}
	return ret
}

//Span returns n evenly spaced points from min to max, both included.
//n must be at least 2.
func Span(n int, min, max float64) []float64 {
	return floats.Span(make([]float64, n), min, max)
}

//ExpDensity evaluates the residence-time density exp(-x/tmean)/tmean at the points x,
//and renormalizes it so its trapezoidal integral over x is 1. x must be sorted.
func ExpDensity(x []float64, tmean float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("polyplot/theory.ExpDensity: need at least 2 points, got %d", len(x))
	}
	if tmean == 0 {
		return nil, fmt.Errorf("polyplot/theory.ExpDensity: mean time can't be 0")
	}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Exp(-v/tmean) / tmean
	}
	z := integrate.Trapezoidal(x, y)
	if z == 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, fmt.Errorf("polyplot/theory.ExpDensity: can't normalize, integral is %v", z)
	}
	floats.Scale(1/z, y)
	return y, nil
}

func getSlice(n int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) >= n {
		return dest[0][:n]
	}
	return make([]float64, n)
}
