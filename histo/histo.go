package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//BinWidths returns the width of each bin given the bin positions x, which should be increasing.
//Each width is the distance to the next position, and the last bin repeats the previous width.
//A single bin gets a width of 1. An empty x gives an empty slice.
func BinWidths(x []float64) []float64 {
	switch len(x) {
	case 0:
		return []float64{}
	case 1:
		return []float64{1.0}
	}
	w := make([]float64, len(x))
	for i := 0; i < len(x)-1; i++ {
		w[i] = x[i+1] - x[i]
	}
	w[len(w)-1] = w[len(w)-2]
	return w
}

//Data is a histogram given as bin centers, bin widths and heights.
type Data struct {
	id         int
	normalized bool
	area       float64 //area of the un-normalized histogram
	centers    []float64
	widths     []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Area       float64   `json:"area"`
		Centers    []float64 `json:"centers"`
		Widths     []float64 `json:"widths"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Area:       D.area,
		Centers:    D.centers,
		Widths:     D.widths,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Area       float64   `json:"area"`
		Centers    []float64 `json:"centers"`
		Widths     []float64 `json:"widths"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Centers) != len(a.Histo) || len(a.Widths) != len(a.Histo) {
		return fmt.Errorf("polyplot/histo.Data.UnmarshalJSON: centers, widths and heights differ in length")
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.area = a.Area
	D.centers = a.Centers
	D.widths = a.Widths
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram, in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, Area: %.4g\n", D.id, D.normalized, D.area)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.centers[i]-D.widths[i]/2, D.centers[i]+D.widths[i]/2))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the bin centers and heights given.
//The widths are obtained with BinWidths. Both slices are copied.
//If an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1.
func NewData(centers, heights []float64, ID ...int) (*Data, error) {
	if len(centers) != len(heights) {
		return nil, fmt.Errorf("polyplot/histo.NewData: %d centers but %d heights", len(centers), len(heights))
	}
	d := new(Data)
	d.centers = getCopySlice(len(centers))
	copy(d.centers, centers)
	d.histo = getCopySlice(len(heights))
	copy(d.histo, heights)
	d.widths = BinWidths(d.centers)
	d.area = area(d.histo, d.widths)
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d, nil
}

//sum of height*width over all bins
func area(histo, widths []float64) float64 {
	if len(histo) == 0 {
		return 0
	}
	return floats.Dot(histo, widths)
}

//Len returns the number of bins
func (D *Data) Len() int {
	return len(D.histo)
}

//Area returns the area under the histogram as given (not normalized).
func (D *Data) Area() float64 {
	return D.area
}

//Integral returns the sum of height*width over the bins in the current state.
//It is 1 for a normalized histogram, up to rounding.
func (D *Data) Integral() float64 {
	return area(D.histo, D.widths)
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize turns the histogram into a probability density, so the sum
//of height*width over all bins is 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize goes back to the original heights.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true. Nothing is done for a histogram with no area
func (D *Data) normaunnorma(normalize bool) {
	if D.area == 0 || math.IsNaN(D.area) || normalize == D.normalized {
		return
	}
	n := D.area
	D.normalized = false
	if normalize {
		n = 1 / D.area
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Copies the bin centers of the histogram
func (D *Data) CopyCenters(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.centers), dest...)
	copy(d, D.centers)
	return d
}

//Copies the bin widths of the histogram
func (D *Data) CopyWidths(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.widths), dest...)
	copy(d, D.widths)
	return d
}

//Copy copies the heights of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the heights of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Log returns the natural logarithm of the heights.
//Empty bins give -Inf.
func (D *Data) Log(dest ...[]float64) []float64 {
	d := D.Copy(dest...)
	for i, v := range d {
		d[i] = math.Log(v)
	}
	return d
}

//Sum returns the sum of the heights
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Range returns the smallest and largest bin centers.
func (D *Data) Range() (float64, float64) {
	if len(D.centers) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(D.centers), floats.Max(D.centers)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}
