// Package axis derives explicit y-axis bounds for the weight chart.
//
// The top of the axis is the starting weight (or the heaviest entry when no
// start weight is set); the bottom is the lower of the target weight and the
// lightest entry. A range that would be empty or inverted is reported as
// disabled so the chart falls back to auto-scaling.
package axis
