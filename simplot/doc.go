//Package simplot draws the figures that compare simulation results with
//theory, using gonum/plot, and saves them as PNG images.
package simplot
