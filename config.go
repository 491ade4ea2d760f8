/*
 * config.go, part of polyplot.
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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/rmera/polyplot/simplot"
	"github.com/rmera/polyplot/summary"
)

//Top directories of the simulation tree.
const (
	ResultsDir = "Resultados_simulacion"
	ParamsDir  = "PARAMETROS"
	FiguresDir = "Graficas"
	SummaryDir = "RES_IMPORTANTES"
	TableName  = "grafica.txt"
)

//Source selects the integrator that produced a set of double-well results.
//Its value is also the prefix of the result and parameter files.
type Source string

const (
	Verlet        Source = "V"
	EulerMaruyama Source = "E-M"
	RungeKutta    Source = "R-K"
)

var methodDirs = map[Source]string{
	Verlet:        "VERLET",
	EulerMaruyama: "EULER-MARUYAMA",
	RungeKutta:    "RUNGE-KUTTA",
}

//Method returns the name of the directory that holds the results for the source.
func (S Source) Method() (string, error) {
	m, ok := methodDirs[S]
	if !ok {
		return "", Error{fmt.Sprintf("%s: unknown source %q, use V, E-M or R-K", BadConfig, string(S)), "", []string{"Method"}, true, nil}
	}
	return m, nil
}

//ModeResidence processes residence-time histograms. It is the only mode there is.
const ModeResidence = "E"

//HistogramConfig contains the options for a residence-time histogram batch.
//Directories left empty are derived from Root, Source and Folder.
type HistogramConfig struct {
	Root        string //base directory for the whole tree
	Source      Source
	Folder      string //the parameter value that names the sub-folder, e.g. "0.5"
	Mode        string
	Input       string
	Output      string
	Params      string
	Width       vg.Length
	Height      vg.Length
	DPI         int
	Points      int  //points in the theoretical curve
	DrawTheory  bool //draw the theoretical curve, when there is one
	PlotDensity bool //plot the log of the normalized density instead of the log of the raw heights
	DumpJSON    bool //write the normalized histogram next to each figure
	Workers     int  //files processed at the same time
}

//SetDefaults fills the unset fields with the default values.
func (C *HistogramConfig) SetDefaults() {
	if C.Source == "" {
		C.Source = Verlet
	}
	if C.Folder == "" {
		C.Folder = "0.5"
	}
	if C.Mode == "" {
		C.Mode = ModeResidence
	}
	if C.Width == 0 {
		C.Width = 8 * vg.Inch
	}
	if C.Height == 0 {
		C.Height = 5 * vg.Inch
	}
	if C.DPI <= 0 {
		C.DPI = simplot.DefaultDPI
	}
	if C.Points < 2 {
		C.Points = 500
	}
	if C.Workers < 1 {
		C.Workers = 1
	}
}

//DefaultHistogramConfig returns a configuration with all the default values.
func DefaultHistogramConfig() *HistogramConfig {
	C := new(HistogramConfig)
	C.SetDefaults()
	return C
}

//Dirs returns the input, output and parameter directories for the batch.
func (C *HistogramConfig) Dirs() (in, out, params string, err error) {
	if C.Mode != ModeResidence {
		return "", "", "", Error{fmt.Sprintf("%s: unknown mode %q", BadConfig, C.Mode), "", []string{"Dirs"}, true, nil}
	}
	method, err := C.Source.Method()
	if err != nil {
		return "", "", "", errDecorate(err, "Dirs")
	}
	in, out, params = C.Input, C.Output, C.Params
	if in == "" {
		in = filepath.Join(C.Root, ResultsDir, "DOBLE_POZO", method, C.Folder, "ESTANCIAS", "HISTOGRAMA")
	}
	if out == "" {
		out = filepath.Join(C.Root, FiguresDir, "DOBLE_POZO", method, C.Folder, "ESTANCIAS")
	}
	if params == "" {
		params = filepath.Join(C.Root, ParamsDir, "DOBLE_POZO", method, C.Folder)
	}
	return in, out, params, nil
}

//LangevinConfig contains the options for the force-extension plot.
type LangevinConfig struct {
	Root   string
	K      string //spring constant, as it appears in the directory names
	N      int    //beads in the chain
	Input  string
	Output string
	Width  vg.Length
	Height vg.Length
	DPI    int
	Points int
}

//SetDefaults fills the unset fields with the default values.
func (C *LangevinConfig) SetDefaults() {
	if C.K == "" {
		C.K = "100.0"
	}
	if C.N == 0 {
		C.N = 4
	}
	if C.Input == "" {
		C.Input = filepath.Join(C.Root, ResultsDir, C.K, "FIJOS", SummaryDir, TableName)
	}
	if C.Output == "" {
		C.Output = filepath.Join(C.Root, FiguresDir, C.K, "ree_vs_fuerza.png")
	}
	if C.Width == 0 {
		C.Width = 10 * vg.Inch
	}
	if C.Height == 0 {
		C.Height = 6 * vg.Inch
	}
	if C.DPI <= 0 {
		C.DPI = simplot.DefaultDPI
	}
	if C.Points < 2 {
		C.Points = 500
	}
}

//NewLangevinConfig returns a configuration with the default values for the
//tree at root and the spring constant K (the default one if K is empty).
func NewLangevinConfig(root, K string) *LangevinConfig {
	C := &LangevinConfig{Root: root, K: K}
	C.SetDefaults()
	return C
}

//DefaultLangevinConfig returns a configuration with all the default values.
func DefaultLangevinConfig() *LangevinConfig {
	return NewLangevinConfig("", "")
}

//ScalingConfig contains the options for the radius of gyration vs N plot.
type ScalingConfig struct {
	Root   string
	K      string
	Input  string
	Output string //if empty, <input dir>/<input base>_plot.png
	Save   bool
	Title  string
	B      float64 //mean bond length
	LogLog bool
	Width  vg.Length
	Height vg.Length
	DPI    int
}

//SetDefaults fills the unset fields with the default values.
//Save and LogLog are left as they are.
func (C *ScalingConfig) SetDefaults() {
	if C.K == "" {
		C.K = "100.0"
	}
	if C.Input == "" {
		C.Input = filepath.Join(C.Root, ResultsDir, C.K, "ESCALA", SummaryDir, TableName)
	}
	if C.Title == "" {
		C.Title = "Radius of gyration vs number of monomers"
	}
	if C.B == 0 {
		C.B = 1.0
	}
	if C.Width == 0 {
		C.Width = 9 * vg.Inch
	}
	if C.Height == 0 {
		C.Height = 6 * vg.Inch
	}
	if C.DPI <= 0 {
		C.DPI = simplot.DefaultDPI
	}
}

//NewScalingConfig returns the configuration used for the runs with spring constant K
//(the default one if K is empty) in the tree at root. It saves to the figures tree.
func NewScalingConfig(root, K string) *ScalingConfig {
	C := &ScalingConfig{Root: root, K: K, Save: true}
	C.SetDefaults()
	C.Title = fmt.Sprintf("Rg vs N (K=%s, L0=1)", shortNumber(C.K))
	C.Output = filepath.Join(C.Root, FiguresDir, C.K, "grafica_Rg_vs_N.png")
	return C
}

//DefaultScalingConfig returns the configuration used for the K=100 runs.
func DefaultScalingConfig() *ScalingConfig {
	return NewScalingConfig("", "")
}

//shortNumber returns s with no trailing zeros if it is a number, "100.0" gives "100".
func shortNumber(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//SavePath returns the name of the image to be saved.
func (C *ScalingConfig) SavePath() string {
	if C.Output != "" {
		return C.Output
	}
	base := strings.TrimSuffix(filepath.Base(C.Input), filepath.Ext(C.Input))
	return filepath.Join(filepath.Dir(C.Input), base+"_plot.png")
}

//SummaryConfig contains the options to reduce a set of trajectories
//and build the table for the plots.
type SummaryConfig struct {
	Root   string
	K      string
	Fixed  bool   //constant force runs (FIJOS) instead of free chains (ESCALA)
	Prefix string //only trajectories with names starting with this are processed
	Skip   int    //trajectory lines to ignore
	XLSX   bool   //also write the table as a spreadsheet
}

//SetDefaults fills the unset fields with the default values.
func (C *SummaryConfig) SetDefaults() {
	if C.K == "" {
		C.K = "100.0"
	}
	if C.Prefix == "" {
		C.Prefix = string(Verlet) + "_"
	}
	if C.Skip <= 0 {
		C.Skip = summary.DefaultSkip
	}
}

//Dirs returns the directories for trajectories, parameters and results.
func (C *SummaryConfig) Dirs() (traj, params, results string) {
	kind := "ESCALA"
	if C.Fixed {
		kind = "FIJOS"
	}
	traj = filepath.Join(C.Root, ResultsDir, C.K, kind)
	params = filepath.Join(C.Root, ParamsDir, C.K, kind)
	results = filepath.Join(traj, SummaryDir)
	return traj, params, results
}
