package textdata

import (
	"errors"
	"fmt"
	"io/fs"
)

//errDecorate is a helper function that asserts that the error is
//a textdata Error and decorates it with the caller's name before returning it.
//Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var err2 Error
	if !errors.As(err, &err2) {
		return err
	}
	err2.deco = err2.Decorate(caller)
	return err2
}

//Error is the general structure for errors in this package.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //the underlying cause, if any
}

func (err Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("textdata file %s error: %s: %v", err.filename, err.message, err.err)
	}
	return fmt.Sprintf("textdata file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Works without a pointer receiver because deco is a slice.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Unwrap returns the underlying cause, so errors.Is works with fs.ErrNotExist and friends.
func (err Error) Unwrap() error { return err.err }

//FileName returns the file to which the error was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//IsNotFound returns true if err was caused by a file that does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

const (
	UnableToOpen  = "Unable to open file"
	ReadError     = "Error reading file"
	MissingHeader = "Missing '" + MeanTimeHeader + "' header"
	BadHeader     = "Malformed '" + MeanTimeHeader + "' header"
	NoData        = "No data rows"
	BadParamLine  = "Parameter line not found or malformed"
	WrongFormat   = "Wrong number of columns"
	NotANumber    = "Field is not a number"
	MissingKey    = "Key not found"
)
