package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/rmera/polyplot"
)

func main() {
	C := polyplot.DefaultHistogramConfig()
	var source string
	flag.StringVar(&C.Root, "root", "", "Base directory of the simulation tree.")
	flag.StringVar(&source, "source", string(C.Source), "Integrator that produced the results: V, E-M or R-K.")
	flag.StringVar(&C.Folder, "folder", C.Folder, "Parameter value that names the sub-folder.")
	flag.StringVar(&C.Mode, "mode", C.Mode, "Kind of histogram. Only E (residence times) is supported.")
	flag.StringVar(&C.Input, "input", "", "Directory with the histograms. Overrides the one derived from root.")
	flag.StringVar(&C.Output, "output", "", "Directory for the figures. Overrides the one derived from root.")
	flag.StringVar(&C.Params, "params", "", "Directory with the parameter files. Overrides the one derived from root.")
	flag.IntVar(&C.DPI, "dpi", C.DPI, "Resolution of the figures.")
	flag.IntVar(&C.Points, "points", C.Points, "Points in the theoretical curve.")
	flag.BoolVar(&C.DrawTheory, "theory", false, "Draw the theoretical exponential density when it can be computed.")
	flag.BoolVar(&C.PlotDensity, "density", false, "Plot the log of the normalized density instead of the log of the raw counts.")
	flag.BoolVar(&C.DumpJSON, "json", false, "Write each normalized histogram as JSON next to its figure.")
	flag.IntVar(&C.Workers, "workers", 1, fmt.Sprintf("Files processed at the same time (this machine has %d CPUs).", runtime.NumCPU()))
	flag.Parse()
	C.Source = polyplot.Source(source)

	R, err := polyplot.Histograms(C)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("%d figures saved, %d files skipped", R.Saved(), R.Skipped())
}
