package main

import (
	"flag"
	"log"
	"os"

	"github.com/rmera/polyplot"
)

//options builds the configuration from the command line arguments. With no arguments,
//it is the configuration of the K=100 runs.
func options(args []string) *polyplot.LangevinConfig {
	D := polyplot.DefaultLangevinConfig()
	fs := flag.NewFlagSet("langevin", flag.ExitOnError)
	root := fs.String("root", "", "Base directory of the simulation tree.")
	k := fs.String("k", D.K, "Spring constant, as it appears in the directory names.")
	n := fs.Int("n", D.N, "Number of beads in the chain.")
	input := fs.String("input", "", "Table with force, Ree and error columns. Overrides the one derived from root and k.")
	output := fs.String("output", "", "Figure to write. Overrides Graficas/<k>/ree_vs_fuerza.png.")
	dpi := fs.Int("dpi", D.DPI, "Resolution of the figure.")
	points := fs.Int("points", D.Points, "Points in the theoretical curve.")
	fs.Parse(args)

	C := polyplot.NewLangevinConfig(*root, *k)
	if *input != "" {
		C.Input = *input
	}
	if *output != "" {
		C.Output = *output
	}
	C.N = *n
	C.DPI = *dpi
	C.Points = *points
	return C
}

func main() {
	C := options(os.Args[1:])
	if err := polyplot.ForceExtension(C); err != nil {
		if polyplot.IsNotFound(err) {
			log.Printf("The data file doesn't exist: %v", err)
			os.Exit(2)
		}
		log.Fatalln(err)
	}
}
