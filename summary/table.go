package summary

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rmera/polyplot/textdata"
)

//Row is one line of the table plotted against theory: (F, Ree, error) in fixed-force
//mode, (N, Rg, error) otherwise.
type Row struct {
	X   float64
	Y   float64
	Err float64
}

//RowFrom returns the table row for R.
func RowFrom(R *Result) Row {
	if R.Fixed {
		return Row{R.F, R.Ree.Mean, R.Ree.Err}
	}
	return Row{float64(R.N), R.Rg.Mean, R.Rg.Err}
}

//Files returns the sorted names of the files in dir that start with prefix and end in .txt,
//possibly followed by a compression suffix (see textdata.Open). Of the files that only differ
//in the compression suffix, only the first one is returned.
func Files(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(textdata.TrimCompression(name), ".txt") {
			continue
		}
		ret = append(ret, name)
	}
	sort.Strings(ret)
	ret, dropped := textdata.DropCompressedTwins(ret)
	for _, v := range dropped {
		log.Printf("polyplot/summary.Files: %s repeats %s, ignored", v, textdata.TrimCompression(v))
	}
	return ret, nil
}

//Collect reads all the result files in dir whose names start with prefix and returns one row
//per file. Files that can't be read are logged and skipped.
func Collect(dir, prefix string, fixed bool) ([]Row, error) {
	names, err := Files(dir, prefix)
	if err != nil {
		return nil, fmt.Errorf("polyplot/summary.Collect: %w", err)
	}
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := textdata.Open(path)
		if err != nil {
			log.Printf("polyplot/summary.Collect: can't open %s: %v", path, err)
			continue
		}
		R, err := ReadResult(f, fixed)
		f.Close()
		if err != nil {
			log.Printf("polyplot/summary.Collect: %s: %v", path, err)
			continue
		}
		rows = append(rows, RowFrom(R))
	}
	return rows, nil
}

//WriteTable writes rows in the text format read by the force-extension and scaling plots.
func WriteTable(w io.Writer, rows []Row, fixed bool) error {
	var b strings.Builder
	for _, r := range rows {
		if fixed {
			fmt.Fprintf(&b, "%.6f %.6f %.6f\n", r.X, r.Y, r.Err)
		} else {
			fmt.Fprintf(&b, "%d %.6f %.6f\n", int(r.X), r.Y, r.Err)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

//Headers returns the column names for the table
func Headers(fixed bool) []string {
	if fixed {
		return []string{"F_cte", "R_ee", "error"}
	}
	return []string{"N", "R_g", "error"}
}

//WriteXLSX saves the rows in a spreadsheet with a header row.
func WriteXLSX(name string, rows []Row, fixed bool) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "grafica"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	for col, h := range Headers(fixed) {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		var first interface{} = r.X
		if !fixed {
			first = int(r.X)
		}
		for col, v := range []interface{}{first, r.Y, r.Err} {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(name)
}
