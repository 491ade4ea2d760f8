package textdata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Table is a rectangular block of numbers read from a whitespace-separated
//text file, one row per line.
type Table struct {
	*mat.Dense
	Name string
}

//Rows returns the number of rows in the table.
func (T *Table) Rows() int {
	r, _ := T.Dims()
	return r
}

//Cols returns the number of columns in the table.
func (T *Table) Cols() int {
	_, c := T.Dims()
	return c
}

//Col returns a copy of the j-th column. If the table has no such column
//a slice of zeros is returned.
func (T *Table) Col(j int) []float64 {
	r, c := T.Dims()
	if j >= c {
		return make([]float64, r)
	}
	return mat.Col(nil, j, T.Dense)
}

//LoadColumns reads a table from r. Blank lines and lines starting with '#' are skipped.
//Every other line must have the same number of numeric fields, between mincols and
//maxcols (maxcols<=0 means no upper limit). A file with a single row gives a 1-row table.
func LoadColumns(r io.Reader, name string, mincols, maxcols int) (*Table, error) {
	var data []float64
	cols := -1
	rows := 0
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineno := 1; scan.Scan(); lineno++ {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if cols < 0 {
			cols = len(fields)
			if cols < mincols || (maxcols > 0 && cols > maxcols) {
				return nil, Error{fmt.Sprintf("%s: %d in line %d", WrongFormat, cols, lineno), name, []string{"LoadColumns"}, true, nil}
			}
		}
		if len(fields) != cols {
			return nil, Error{fmt.Sprintf("%s: %d in line %d, expected %d", WrongFormat, len(fields), lineno, cols), name, []string{"LoadColumns"}, true, nil}
		}
		for _, v := range fields {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s in line %d", NotANumber, lineno), name, []string{"LoadColumns"}, true, err}
			}
			data = append(data, f)
		}
		rows++
	}
	if err := scan.Err(); err != nil {
		return nil, Error{ReadError, name, []string{"LoadColumns"}, true, err}
	}
	if rows == 0 {
		return nil, Error{NoData, name, []string{"LoadColumns"}, true, nil}
	}
	return &Table{Dense: mat.NewDense(rows, cols, data), Name: name}, nil
}

//LoadColumnsFile is LoadColumns on the file name.
func LoadColumnsFile(name string, mincols, maxcols int) (*Table, error) {
	f, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "LoadColumnsFile")
	}
	defer f.Close()
	T, err := LoadColumns(f, name, mincols, maxcols)
	if err != nil {
		return nil, errDecorate(err, "LoadColumnsFile")
	}
	return T, nil
}

//ReadKeyValues reads "KEY value" lines from r. Lines that don't have a
//numeric second field are ignored. If a key is repeated, the last value is kept.
func ReadKeyValues(r io.Reader) (map[string]float64, error) {
	ret := make(map[string]float64)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		fields := strings.Fields(scan.Text())
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		ret[fields[0]] = v
	}
	if err := scan.Err(); err != nil {
		return nil, Error{ReadError, "", []string{"ReadKeyValues"}, true, err}
	}
	return ret, nil
}
