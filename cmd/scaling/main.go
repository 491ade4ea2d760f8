package main

import (
	"flag"
	"log"
	"os"

	"github.com/rmera/polyplot"
)

//options builds the configuration from the command line arguments. With no arguments,
//it is the configuration of the K=100 runs.
func options(args []string) *polyplot.ScalingConfig {
	D := polyplot.DefaultScalingConfig()
	fs := flag.NewFlagSet("scaling", flag.ExitOnError)
	root := fs.String("root", "", "Base directory of the simulation tree.")
	k := fs.String("k", D.K, "Spring constant, as it appears in the directory names.")
	input := fs.String("input", "", "Table with N, Rg and (optionally) error columns. Overrides the one derived from root and k.")
	output := fs.String("output", "", "Figure to write. Overrides Graficas/<k>/grafica_Rg_vs_N.png.")
	title := fs.String("title", "", "Title of the figure. By default it shows k.")
	b := fs.Float64("b", D.B, "Mean bond length.")
	loglog := fs.Bool("loglog", D.LogLog, "Use logarithmic axes.")
	save := fs.Bool("save", D.Save, "Save the figure.")
	dpi := fs.Int("dpi", D.DPI, "Resolution of the figure.")
	fs.Parse(args)

	C := polyplot.NewScalingConfig(*root, *k)
	if *input != "" {
		C.Input = *input
	}
	if *output != "" {
		C.Output = *output
	}
	if *title != "" {
		C.Title = *title
	}
	C.B = *b
	C.LogLog = *loglog
	C.Save = *save
	C.DPI = *dpi
	return C
}

func main() {
	C := options(os.Args[1:])
	name, err := polyplot.Scaling(C)
	if err != nil {
		if polyplot.IsNotFound(err) {
			log.Printf("The data file doesn't exist: %v", err)
			os.Exit(2)
		}
		log.Fatalln(err)
	}
	if name == "" {
		log.Println("Figure not saved")
	}
}
