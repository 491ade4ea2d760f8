package theory

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestLangevin(Te *testing.T) {
	want := 3 * (math.Cosh(1)/math.Sinh(1) - 1/(1+1e-9))
	if got := Langevin(4, 1.0); relErr(got, want) > 1e-9 {
		Te.Errorf("Langevin(4,1)=%v, want %v", got, want)
	}
	//large forces saturate at n-1
	if got := Langevin(4, 1e4); math.Abs(got-3) > 1e-3 {
		Te.Errorf("Langevin(4,1e4)=%v, want about 3", got)
	}
	if got := Langevin(4, 0); !math.IsInf(got, 0) && !math.IsNaN(got) {
		Te.Errorf("Langevin(4,0)=%v, expected a non-finite value", got)
	}
	f := []float64{0.5, 1, 2}
	c := LangevinCurve(4, f)
	for i, v := range f {
		if c[i] != Langevin(4, v) {
			Te.Errorf("curve point %d: %v", i, c[i])
		}
	}
}

func TestGyrationRadius(Te *testing.T) {
	want := math.Sqrt(99.0 / 60.0)
	if got := GyrationRadius(1.0, 10); relErr(got, want) > 1e-12 {
		Te.Errorf("GyrationRadius(1,10)=%v, want %v", got, want)
	}
	//one point and many points give the same numbers.
	one := GyrationCurve(1.0, []float64{10})
	many := GyrationCurve(1.0, []float64{5, 10, 20})
	if one[0] != many[1] || len(one) != 1 {
		Te.Errorf("single %v vs multi %v", one, many)
	}
	if got := GyrationRadius(2, 10); relErr(got, 2*want) > 1e-12 {
		Te.Errorf("bond length scaling: %v", got)
	}
}

func TestSpan(Te *testing.T) {
	s := Span(500, 0.1, 5)
	if len(s) != 500 || s[0] != 0.1 || s[499] != 5 {
		Te.Errorf("Span: len %d, ends %v %v", len(s), s[0], s[len(s)-1])
	}
	step := s[1] - s[0]
	if math.Abs(s[250]-s[249]-step) > 1e-12 {
		Te.Error("Span is not evenly spaced")
	}
}

func TestExpDensity(Te *testing.T) {
	x := Span(500, 0.5, 20)
	y, err := ExpDensity(x, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if in := integrate.Trapezoidal(x, y); math.Abs(in-1) > 1e-12 {
		Te.Errorf("integral %v, want 1", in)
	}
	//the shape is still exponential
	r := y[100] / y[0]
	if relErr(r, math.Exp(-(x[100]-x[0])/3)) > 1e-9 {
		Te.Errorf("ratio %v", r)
	}
	if _, err := ExpDensity([]float64{1}, 3); err == nil {
		Te.Error("expected an error for a single point")
	}
	if _, err := ExpDensity(Span(10, 2, 2), 3); err == nil {
		Te.Error("expected an error for an empty range")
	}
}
