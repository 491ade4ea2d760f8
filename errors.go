/*
 * errors.go, part of polyplot.
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
	"errors"
	"fmt"
	"io/fs"
)

//Error is the general structure for errors in polyplot. The underlying cause, if any, is
//available through Unwrap.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func (err Error) Error() string {
	msg := err.message
	if err.filename != "" {
		msg = fmt.Sprintf("%s (%s)", msg, err.filename)
	}
	if err.err != nil {
		return fmt.Sprintf("polyplot: %s: %v", msg, err.err)
	}
	return "polyplot: " + msg
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Unwrap returns the error that caused this one, or nil.
func (err Error) Unwrap() error { return err.err }

//FileName returns the file to which the error was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//errDecorate decorates err with the caller's name if it is a polyplot Error.
func errDecorate(err error, caller string) error {
	var err2 Error
	if !errors.As(err, &err2) {
		return err
	}
	err2.deco = err2.Decorate(caller)
	return err2
}

//IsNotFound returns true if err comes from an input file that doesn't exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

const (
	BadConfig     = "Invalid configuration"
	InputMissing  = "Input file not found"
	InputError    = "Can't read input"
	PlotError     = "Can't produce plot"
	SaveError     = "Can't save output"
	NoInputFiles  = "No input files found"
	SkippedFile   = "File skipped"
	NoTheoryCurve = "No theoretical curve"
)
