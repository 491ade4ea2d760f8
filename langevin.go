/*
 * langevin.go, part of polyplot.
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
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/rmera/polyplot/simplot"
	"github.com/rmera/polyplot/textdata"
	"github.com/rmera/polyplot/theory"
)

//ForceExtension plots the end-to-end distances measured at constant forces, read from
//a (force, Ree, error) table, against the Langevin curve for a chain of C.N beads.
//If the input file doesn't exist, the returned error fulfills IsNotFound.
func ForceExtension(C *LangevinConfig) error {
	C.SetDefaults()
	if C.N < 2 {
		return Error{fmt.Sprintf("%s: need at least 2 beads, got %d", BadConfig, C.N), "", []string{"ForceExtension"}, true, nil}
	}
	T, err := textdata.LoadColumnsFile(C.Input, 3, 3)
	if err != nil {
		msg := InputError
		if IsNotFound(err) {
			msg = InputMissing
		}
		return Error{msg, C.Input, []string{"ForceExtension"}, true, err}
	}
	f := T.Col(0)
	ft := theory.Span(C.Points, floats.Min(f), floats.Max(f))
	labels := simplot.Labels{
		Title:  "Ree vs constant applied force",
		X:      "Constant applied force (F)",
		Y:      "End-to-end distance (Ree)",
		Data:   "Simulation data",
		Theory: fmt.Sprintf("Theory: %d(coth(F) - 1/F)", C.N-1),
	}
	data := simplot.Points{X: f, Y: T.Col(1), Err: T.Col(2)}
	curve := &simplot.Curve{X: ft, Y: theory.LangevinCurve(C.N, ft)}
	p, err := simplot.Comparison(labels, data, curve, simplot.Style{DataColor: simplot.RoyalBlue, TheoryColor: simplot.Red})
	if err != nil {
		return Error{PlotError, C.Input, []string{"ForceExtension"}, true, err}
	}
	if err := simplot.Save(p, C.Width, C.Height, C.DPI, C.Output); err != nil {
		return Error{SaveError, C.Output, []string{"ForceExtension"}, true, err}
	}
	log.Printf("Figure saved in: %s", C.Output)
	return nil
}
