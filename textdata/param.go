package textdata

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

//Position of eta in a companion parameter file: second field
//of the fourth line.
const (
	EtaLine  = 3
	EtaField = 1
)

//Param is the result of an optional parameter lookup. When Found is false,
//Err says why, and Value is meaningless.
type Param struct {
	Value float64
	Found bool
	Err   error
}

//Digits returns all the decimal digits in name, concatenated in order.
//"V_12_a3.txt" gives "123".
func Digits(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

//ParamFileName returns the name of the parameter file that goes with
//the data file dataname, for the given prefix, i.e. prefix_<digits>.txt
func ParamFileName(prefix, dataname string) string {
	return fmt.Sprintf("%s_%s.txt", prefix, Digits(filepath.Base(dataname)))
}

//ReadParam returns the field-th whitespace separated field of the line-th line
//(both 0-based) read from r, as a float.
func ReadParam(r io.Reader, line, field int) (float64, error) {
	scan := bufio.NewScanner(r)
	for i := 0; scan.Scan(); i++ {
		if i != line {
			continue
		}
		fields := strings.Fields(scan.Text())
		if len(fields) <= field {
			return 0, Error{BadParamLine, "", []string{"ReadParam"}, false, nil}
		}
		v, err := strconv.ParseFloat(fields[field], 64)
		if err != nil {
			return 0, Error{NotANumber, "", []string{"ReadParam"}, false, err}
		}
		return v, nil
	}
	if err := scan.Err(); err != nil {
		return 0, Error{ReadError, "", []string{"ReadParam"}, true, err}
	}
	return 0, Error{BadParamLine, "", []string{"ReadParam"}, false, nil}
}

//LookupParam reads a parameter from the file name. It never fails,
//the outcome is in the returned Param.
func LookupParam(name string, line, field int) Param {
	f, err := Open(name)
	if err != nil {
		return Param{Err: errDecorate(err, "LookupParam")}
	}
	defer f.Close()
	v, err := ReadParam(f, line, field)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			err = e
		}
		return Param{Err: errDecorate(err, "LookupParam")}
	}
	return Param{Value: v, Found: true}
}

//LookupEta finds the eta parameter that goes with the histogram file dataname.
func LookupEta(paramdir, prefix, dataname string) Param {
	return LookupParam(filepath.Join(paramdir, ParamFileName(prefix, dataname)), EtaLine, EtaField)
}

//ReadN returns the number of particles from a run parameter file,
//i.e. the integer in the first line that starts with "N ".
func ReadN(r io.Reader) (int, error) {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if !strings.HasPrefix(line, "N ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return -1, Error{NotANumber, "", []string{"ReadN"}, false, err}
		}
		return n, nil
	}
	if err := scan.Err(); err != nil {
		return -1, Error{ReadError, "", []string{"ReadN"}, true, err}
	}
	return -1, Error{MissingKey + ": N", "", []string{"ReadN"}, false, nil}
}

//ReadNFile is ReadN on the file name.
func ReadNFile(name string) (int, error) {
	f, err := Open(name)
	if err != nil {
		return -1, errDecorate(err, "ReadNFile")
	}
	defer f.Close()
	n, err := ReadN(f)
	if e, ok := err.(Error); ok {
		e.filename = name
		return n, errDecorate(e, "ReadNFile")
	}
	return n, err
}
