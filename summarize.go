package polyplot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rmera/polyplot/summary"
	"github.com/rmera/polyplot/textdata"
)

//SummaryReport tells what Summarize did.
type SummaryReport struct {
	Files []FileReport //one per trajectory, Output is the result file
	Table string       //the table written
	XLSX  string       //the spreadsheet written, if any
	Rows  int
}

//Summarize reduces every trajectory selected by C to a result file, and then collects all
//the result files into the table read by ForceExtension (fixed force) or Scaling (free chains).
//Trajectories that can't be processed are logged and skipped.
func Summarize(C *SummaryConfig) (*SummaryReport, error) {
	C.SetDefaults()
	trajdir, paramdir, resdir := C.Dirs()
	names, err := summary.Files(trajdir, C.Prefix)
	if err != nil {
		return nil, Error{InputError, trajdir, []string{"Summarize"}, true, err}
	}
	if err := os.MkdirAll(resdir, 0755); err != nil {
		return nil, Error{SaveError, resdir, []string{"Summarize"}, true, err}
	}
	report := new(SummaryReport)
	for _, name := range names {
		R := FileReport{Name: name}
		res, err := reduceTrajectory(C, filepath.Join(trajdir, name), filepath.Join(paramdir, textdata.TrimCompression(name)))
		if err != nil {
			report.Files = append(report.Files, skip(R, err))
			continue
		}
		R.Output = filepath.Join(resdir, textdata.TrimCompression(name))
		if err := writeResult(R.Output, res); err != nil {
			report.Files = append(report.Files, skip(R, Error{SaveError, R.Output, []string{"Summarize"}, false, err}))
			continue
		}
		log.Printf("Result file written: %s", R.Output)
		report.Files = append(report.Files, R)
	}
	rows, err := summary.Collect(resdir, C.Prefix, C.Fixed)
	if err != nil {
		return nil, Error{InputError, resdir, []string{"Summarize"}, true, err}
	}
	report.Rows = len(rows)
	report.Table = filepath.Join(resdir, TableName)
	f, err := os.Create(report.Table)
	if err != nil {
		return nil, Error{SaveError, report.Table, []string{"Summarize"}, true, err}
	}
	err = summary.WriteTable(f, rows, C.Fixed)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return nil, Error{SaveError, report.Table, []string{"Summarize"}, true, err}
	}
	log.Printf("%s written in %s", TableName, resdir)
	if C.XLSX {
		report.XLSX = filepath.Join(resdir, "grafica.xlsx")
		if err := summary.WriteXLSX(report.XLSX, rows, C.Fixed); err != nil {
			return report, Error{SaveError, report.XLSX, []string{"Summarize"}, true, err}
		}
	}
	return report, nil
}

//reduceTrajectory gets the chain length (and force, for fixed runs) from the parameter
//file and reduces the trajectory.
func reduceTrajectory(C *SummaryConfig, traj, params string) (*summary.Result, error) {
	n, err := textdata.ReadNFile(params)
	if err != nil {
		return nil, err
	}
	var force float64
	if C.Fixed {
		pf, err := textdata.Open(params)
		if err != nil {
			return nil, err
		}
		kv, err := textdata.ReadKeyValues(pf)
		pf.Close()
		if err != nil {
			return nil, err
		}
		var ok bool
		if force, ok = kv[summary.KeyF]; !ok {
			return nil, Error{fmt.Sprintf("%s not found", summary.KeyF), params, []string{"reduceTrajectory"}, false, nil}
		}
	}
	f, err := textdata.Open(traj)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := summary.Reduce(f, n, C.Skip)
	if err != nil {
		return nil, Error{InputError, traj, []string{"reduceTrajectory"}, false, err}
	}
	res.Fixed = C.Fixed
	res.F = force
	return res, nil
}

func writeResult(name string, R *summary.Result) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = summary.WriteResult(f, R)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
