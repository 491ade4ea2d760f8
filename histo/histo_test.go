package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
)

func TestBinWidths(Te *testing.T) {
	w := BinWidths([]float64{0, 1, 3, 6})
	want := []float64{1, 2, 3, 3}
	for i := range want {
		if w[i] != want[i] {
			Te.Errorf("width %d: got %v want %v", i, w[i], want[i])
		}
	}
	w = BinWidths([]float64{42})
	if len(w) != 1 || w[0] != 1.0 {
		Te.Errorf("single point width: got %v, want [1]", w)
	}
	if w = BinWidths(nil); len(w) != 0 {
		Te.Errorf("empty input: got %v", w)
	}
}

func TestNormalize(Te *testing.T) {
	fmt.Println("Histogram normalization test!")
	sets := []struct {
		x, y []float64
	}{
		{[]float64{0.5, 1.5, 2.5, 3.5}, []float64{10, 6, 3, 1}},
		{[]float64{0, 0.1, 0.3, 0.7, 1.5}, []float64{3, 50, 7, 0, 2}},
		{[]float64{2}, []float64{17}},
	}
	for i, s := range sets {
		D, err := NewData(s.x, s.y, i)
		if err != nil {
			Te.Fatal(err)
		}
		D.Normalize()
		if !D.Normalized() {
			Te.Errorf("set %d not marked as normalized", i)
		}
		if in := D.Integral(); math.Abs(in-1) > 1e-12 {
			Te.Errorf("set %d: normalized integral %v, want 1", i, in)
		}
		//normalizing twice does nothing
		D.Normalize()
		if in := D.Integral(); math.Abs(in-1) > 1e-12 {
			Te.Errorf("set %d: integral after second Normalize %v", i, in)
		}
		D.UnNormalize()
		for j, v := range D.View() {
			if math.Abs(v-s.y[j]) > 1e-9 {
				Te.Errorf("set %d bin %d: got %v back, want %v", i, j, v, s.y[j])
			}
		}
		fmt.Println(D)
	}
}

func TestNewDataCopies(Te *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}
	D, err := NewData(x, y)
	if err != nil {
		Te.Fatal(err)
	}
	y[0] = 100
	if D.View()[0] != 3 || D.ID() != -1 {
		Te.Error("NewData should copy its input and default the ID to -1")
	}
	if _, err := NewData([]float64{1}, []float64{1, 2}); err == nil {
		Te.Error("expected an error for mismatched lengths")
	}
	if l := D.Log(); math.Abs(l[1]-math.Log(4)) > 1e-12 {
		Te.Errorf("Log: %v", l)
	}
	if min, max := D.Range(); min != 1 || max != 2 {
		Te.Errorf("Range: %v %v", min, max)
	}
}

func TestHistoJSON(Te *testing.T) {
	D, _ := NewData([]float64{0.5, 1.5, 2.5}, []float64{2, 1, 1}, 3)
	D.Normalize()
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if D2.ID() != 3 || !D2.Normalized() || D2.Area() != 4 || D2.Len() != 3 {
		Te.Errorf("JSON: got %s", D2)
	}
}
