package main

import (
	"flag"
	"log"

	"github.com/rmera/polyplot"
	"github.com/rmera/polyplot/summary"
)

func main() {
	C := new(polyplot.SummaryConfig)
	flag.StringVar(&C.Root, "root", "", "Base directory of the simulation tree.")
	flag.StringVar(&C.K, "k", "100.0", "Spring constant, as it appears in the directory names.")
	flag.BoolVar(&C.Fixed, "fixed", false, "Constant force runs (FIJOS) instead of free chains (ESCALA).")
	flag.StringVar(&C.Prefix, "prefix", string(polyplot.Verlet)+"_", "Only trajectories whose names start with this are processed.")
	flag.IntVar(&C.Skip, "skip", summary.DefaultSkip, "Trajectory lines to ignore.")
	flag.BoolVar(&C.XLSX, "xlsx", false, "Also write the table as an xlsx spreadsheet.")
	flag.Parse()

	R, err := polyplot.Summarize(C)
	if err != nil {
		log.Fatalln(err)
	}
	skipped := 0
	for _, v := range R.Files {
		if v.Skipped {
			skipped++
		}
	}
	log.Printf("%d rows written to %s, %d trajectories skipped", R.Rows, R.Table, skipped)
}
