/*
 * doc.go, part of polyplot.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package polyplot turns the output of the bead-spring polymer and double-well
simulations into figures.

	**polyplot Capabilities**

    Plots batches of residence-time histograms, normalizing each one and,
	when the run parameters are available, computing the exponential density
	with the same mean time. Files that can't be processed are logged and skipped.

    Plots the end-to-end distance of a chain under constant force against
	the Langevin (freely jointed chain) prediction.

    Plots the radius of gyration against the number of monomers, together with
	the ideal chain prediction, optionally in log-log axes.

    Reduces raw trajectories to averages with standard errors, and collects them
	into the tables the plots above read (plain text and xlsx).

Inputs can be plain text, gzip (.gz) or zstd (.zst) compressed.
The command line programs are in the cmd directory.

*/
package polyplot
