package summary

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/rmera/polyplot/textdata"
)

//DefaultSkip is the number of trajectory lines ignored by default
//(the header plus the first frames).
const DefaultSkip = 5

//Keys in a result file
const (
	KeyEk      = "PROMEDIO_ENERGIA_CINETICA"
	KeyEkErr   = "ERROR_ENERGIA_CINETICA"
	KeyEp      = "PROMEDIO_ENERGIA_POTENCIAL"
	KeyEpErr   = "ERROR_ENERGIA_POTENCIAL"
	KeyRee     = "PROMEDIO_R_EE"
	KeyReeErr  = "ERROR_R_EE"
	KeyRg      = "PROMEDIO_R_G"
	KeyRgErr   = "ERROR_R_G"
	KeyN       = "N_particulas"
	KeyF       = "F_cte"
	maxLineLen = 16 * 1024 * 1024
)

//Stat is a mean and its standard error
type Stat struct {
	Mean float64
	Err  float64
}

//Result contains the averages obtained from one trajectory.
type Result struct {
	Ek      Stat
	Ep      Stat
	Rg      Stat
	Ree     Stat
	N       int
	F       float64 //constant force, only meaningful if Fixed is true
	Fixed   bool
	Samples int
}

//meanErr returns the mean of x and the standard error of the mean, sqrt((<x^2>-<x>^2)/n)
func meanErr(x []float64) Stat {
	m, s := stat.PopMeanStdDev(x, nil)
	return Stat{Mean: m, Err: s / math.Sqrt(float64(len(x)))}
}

//Reduce reads a trajectory of a chain of n beads from r, and returns the averages
//of the kinetic and potential energies, radius of gyration and end-to-end distance.
//The first skip lines are ignored. Each line has the time, 3n positions, 3n velocities,
//and then Ek, Ep, Et, Rg and Ree. Lines that can't be read are logged and skipped.
func Reduce(r io.Reader, n, skip int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("polyplot/summary.Reduce: invalid number of beads %d", n)
	}
	first := 1 + 6*n
	var ek, ep, rg, ree []float64
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	vals := make([]float64, 5)
	for lineno := 1; scan.Scan(); lineno++ {
		if lineno <= skip {
			continue
		}
		fields := strings.Fields(scan.Text())
		if len(fields) < first+5 {
			log.Printf("polyplot/summary.Reduce: can't read line %d: %d fields, need %d", lineno, len(fields), first+5)
			continue
		}
		var err error
		for i, v := range fields[first : first+5] {
			vals[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				break
			}
		}
		if err != nil {
			log.Printf("polyplot/summary.Reduce: can't read line %d: %v", lineno, err)
			continue
		}
		//vals[2] is the total energy, which we don't need.
		ek = append(ek, vals[0])
		ep = append(ep, vals[1])
		rg = append(rg, vals[3])
		ree = append(ree, vals[4])
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("polyplot/summary.Reduce: %w", err)
	}
	if len(ek) == 0 {
		return nil, fmt.Errorf("polyplot/summary.Reduce: no data found")
	}
	return &Result{
		Ek:      meanErr(ek),
		Ep:      meanErr(ep),
		Rg:      meanErr(rg),
		Ree:     meanErr(ree),
		N:       n,
		Samples: len(ek),
	}, nil
}

//WriteResult writes R to w as "KEY value" lines.
func WriteResult(w io.Writer, R *Result) error {
	var b strings.Builder
	pr := func(k string, v float64) { fmt.Fprintf(&b, "%s %.6f\n", k, v) }
	pr(KeyEk, R.Ek.Mean)
	pr(KeyEkErr, R.Ek.Err)
	pr(KeyEp, R.Ep.Mean)
	pr(KeyEpErr, R.Ep.Err)
	pr(KeyRee, R.Ree.Mean)
	pr(KeyReeErr, R.Ree.Err)
	pr(KeyRg, R.Rg.Mean)
	pr(KeyRgErr, R.Rg.Err)
	fmt.Fprintf(&b, "%s %d\n", KeyN, R.N)
	if R.Fixed {
		pr(KeyF, R.F)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

//ReadResult reads a result file written by WriteResult. Only the keys
//needed for the table in the given mode are required.
func ReadResult(r io.Reader, fixed bool) (*Result, error) {
	kv, err := textdata.ReadKeyValues(r)
	if err != nil {
		return nil, err
	}
	need := []string{KeyRg, KeyRgErr, KeyN}
	if fixed {
		need = []string{KeyRee, KeyReeErr, KeyF}
	}
	for _, k := range need {
		if _, ok := kv[k]; !ok {
			return nil, fmt.Errorf("polyplot/summary.ReadResult: %s not found", k)
		}
	}
	R := &Result{
		Ek:    Stat{kv[KeyEk], kv[KeyEkErr]},
		Ep:    Stat{kv[KeyEp], kv[KeyEpErr]},
		Rg:    Stat{kv[KeyRg], kv[KeyRgErr]},
		Ree:   Stat{kv[KeyRee], kv[KeyReeErr]},
		N:     int(kv[KeyN]),
		F:     kv[KeyF],
		Fixed: fixed,
	}
	return R, nil
}
