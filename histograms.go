/*
 * histograms.go, part of polyplot.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package polyplot

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rmera/polyplot/histo"
	"github.com/rmera/polyplot/simplot"
	"github.com/rmera/polyplot/textdata"
	"github.com/rmera/polyplot/theory"
)

//FileReport tells what happened with one input file of a batch.
type FileReport struct {
	Name    string
	Output  string //the image written, empty if the file was skipped
	Skipped bool
	Reason  error //why the file was skipped
	Eta     textdata.Param
	Theory  bool //a theoretical curve was computed
}

//BatchReport lists the outcome for each file, in input order.
type BatchReport struct {
	Files []FileReport
}

//Saved returns the number of figures written.
func (B *BatchReport) Saved() int {
	n := 0
	for _, v := range B.Files {
		if !v.Skipped {
			n++
		}
	}
	return n
}

//Skipped returns the number of files that were skipped.
func (B *BatchReport) Skipped() int {
	return len(B.Files) - B.Saved()
}

//HistogramFiles returns the sorted names of the files in dir that contain prefix
//and end in .txt (or .txt.gz, .txt.zst). A compressed file is left out if the plain
//one, or another compressed version, is there too.
func HistogramFiles(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, Error{InputError, dir, []string{"HistogramFiles"}, true, err}
	}
	var ret []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.Contains(name, prefix) || !strings.HasSuffix(textdata.TrimCompression(name), ".txt") {
			continue
		}
		ret = append(ret, name)
	}
	sort.Strings(ret)
	//twins would write the same figure.
	ret, dropped := textdata.DropCompressedTwins(ret)
	for _, v := range dropped {
		log.Printf("%s gives the same figure as %s. Skipped.", v, textdata.TrimCompression(v))
	}
	return ret, nil
}

//ImageName returns the name of the figure for the data file name.
func ImageName(name string) string {
	return strings.TrimSuffix(textdata.TrimCompression(name), ".txt") + ".png"
}

//Histograms plots every residence-time histogram selected by C. A file that can't be
//processed is logged and skipped, and never stops the batch. An error is returned
//only if the configuration is invalid or the input directory can't be read.
func Histograms(C *HistogramConfig) (*BatchReport, error) {
	C.SetDefaults()
	in, out, params, err := C.Dirs()
	if err != nil {
		return nil, errDecorate(err, "Histograms")
	}
	names, err := HistogramFiles(in, string(C.Source))
	if err != nil {
		return nil, errDecorate(err, "Histograms")
	}
	report := &BatchReport{Files: make([]FileReport, len(names))}
	if len(names) == 0 {
		log.Printf("%s: prefix '%s' in %s", NoInputFiles, C.Source, in)
		return report, nil
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, Error{SaveError, out, []string{"Histograms"}, true, err}
	}
	if C.Workers <= 1 {
		for i, name := range names {
			report.Files[i] = histogramFile(C, in, out, params, name)
		}
		return report, nil
	}
	//Each file writes its own output, so they can go concurrently.
	semaphore := make(chan struct{}, C.Workers)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, name string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			report.Files[i] = histogramFile(C, in, out, params, name)
		}(i, name)
	}
	wg.Wait()
	return report, nil
}

//skip logs the reason and returns a report for a skipped file.
func skip(R FileReport, err error) FileReport {
	log.Printf("%s: %v. Skipped.", R.Name, err)
	R.Skipped = true
	R.Reason = err
	return R
}

//histogramFigure is what gets drawn for one histogram file.
type histogramFigure struct {
	Data   *histo.Data //normalized
	Bars   simplot.Bars
	Theory *simplot.Curve //nil if the curve is not drawn
}

//newHistogramFigure normalizes H and builds the bars and, if there are parameters for it
//and C asks for it, the theoretical curve. R gets the parameter lookup and theory outcome.
func newHistogramFigure(C *HistogramConfig, params string, H *textdata.Histogram, R *FileReport) (*histogramFigure, error) {
	D, err := histo.NewData(H.X, H.Y)
	if err != nil {
		return nil, err
	}
	F := &histogramFigure{Data: D, Bars: simplot.Bars{X: D.CopyCenters(), Widths: D.CopyWidths()}}
	F.Bars.Y = D.Log() //what gets plotted, unless the density is requested.
	D.Normalize()
	if C.PlotDensity {
		F.Bars.Y = D.Log()
	}
	R.Eta = textdata.LookupEta(params, string(C.Source), R.Name)
	if !R.Eta.Found {
		if textdata.IsNotFound(R.Eta.Err) {
			log.Printf("Parameter file not found: %s, no theoretical curve", textdata.ParamFileName(string(C.Source), R.Name))
		} else {
			log.Printf("Error reading parameters: %v", R.Eta.Err)
		}
		return F, nil
	}
	if R.Eta.Value == 0 {
		return F, nil
	}
	min, max := D.Range()
	x := theory.Span(C.Points, min, max)
	y, err := theory.ExpDensity(x, H.MeanTime)
	if err != nil {
		log.Printf("%s: %s: %v", R.Name, NoTheoryCurve, err)
		return F, nil
	}
	R.Theory = true
	if C.DrawTheory {
		for i, v := range y {
			y[i] = math.Log(v)
		}
		F.Theory = &simplot.Curve{X: x, Y: y}
	}
	return F, nil
}

//histogramFile reads, normalizes and plots one histogram.
func histogramFile(C *HistogramConfig, in, out, params, name string) FileReport {
	R := FileReport{Name: name}
	H, err := textdata.ReadHistogramFile(filepath.Join(in, name))
	if err != nil {
		return skip(R, err)
	}
	if err := H.Check(); err != nil {
		return skip(R, err)
	}
	F, err := newHistogramFigure(C, params, H, &R)
	if err != nil {
		return skip(R, err)
	}
	if C.DumpJSON {
		if err := dumpJSON(F.Data, filepath.Join(out, strings.TrimSuffix(ImageName(name), ".png")+".json")); err != nil {
			log.Printf("%s: can't write the normalized histogram: %v", name, err)
		}
	}
	labels := simplot.Labels{
		Title:  fmt.Sprintf("Residence time histogram - %s", name),
		X:      "Residence time",
		Y:      "Probability density",
		Data:   "Histogram",
		Theory: fmt.Sprintf("Theory (eta=%g)", R.Eta.Value),
	}
	p, err := simplot.Histogram(labels, F.Bars, F.Theory)
	if err != nil {
		return skip(R, Error{PlotError, name, []string{"histogramFile"}, false, err})
	}
	target := filepath.Join(out, ImageName(name))
	if err := simplot.Save(p, C.Width, C.Height, C.DPI, target); err != nil {
		return skip(R, Error{SaveError, target, []string{"histogramFile"}, false, err})
	}
	log.Printf("Saved: %s", target)
	R.Output = target
	return R
}

func dumpJSON(D *histo.Data, name string) error {
	j, err := json.MarshalIndent(D, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(name, j, 0644)
}
