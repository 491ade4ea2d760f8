package textdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

//MeanTimeHeader starts the comment line that carries the mean residence time
//in a histogram file.
const MeanTimeHeader = "# Tiempo medio:"

//Histogram holds the contents of a residence-time histogram file.
type Histogram struct {
	Name        string
	X           []float64 //bin centers
	Y           []float64 //raw bin heights
	MeanTime    float64
	HasMeanTime bool
}

//Len returns the number of bins read.
func (H *Histogram) Len() int {
	return len(H.X)
}

//Check returns an error if the histogram can't be used: the mean time header
//is looked for first, then the data.
func (H *Histogram) Check() error {
	if !H.HasMeanTime {
		return Error{MissingHeader, H.Name, []string{"Check"}, false, nil}
	}
	if len(H.X) == 0 {
		return Error{NoData, H.Name, []string{"Check"}, false, nil}
	}
	return nil
}

//ReadHistogram reads a histogram from r. name is only used in errors.
//Comment lines start with '#', and only rows with exactly 2 numeric
//fields are taken as data. Anything else is silently ignored.
//A missing header is not an error here, see Histogram.Check.
func ReadHistogram(r io.Reader, name string) (*Histogram, error) {
	H := &Histogram{Name: name}
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if strings.HasPrefix(line, MeanTimeHeader) {
			//everything after the first ':' and up to the next one, as the
			//simulation writes it.
			val := strings.Split(line, ":")[1]
			t, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, Error{BadHeader, name, []string{"ReadHistogram"}, false, err}
			}
			H.MeanTime = t
			H.HasMeanTime = true
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		H.X = append(H.X, x)
		H.Y = append(H.Y, y)
	}
	if err := scan.Err(); err != nil {
		return nil, Error{ReadError, name, []string{"ReadHistogram"}, true, err}
	}
	return H, nil
}

//ReadHistogramFile opens and reads the histogram file name.
func ReadHistogramFile(name string) (*Histogram, error) {
	f, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadHistogramFile")
	}
	defer f.Close()
	H, err := ReadHistogram(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadHistogramFile")
	}
	return H, nil
}
