//Package summary reduces simulation trajectories to averages with their errors,
//stores them as "KEY value" result files, and collects those into the
//tables that are plotted against theory.
package summary
