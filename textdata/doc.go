//Package textdata reads the plain text files written by the simulations:
//residence-time histograms with a "# Tiempo medio:" header, positional parameter
//files, whitespace-separated column tables and "KEY value" result files.
//Files ending in .gz or .zst are decompressed transparently.
package textdata
