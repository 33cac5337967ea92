// Package charts builds the chart view model: the filtered weight and
// variance series, their trend lines, the start and target guides and the
// explicit y-axis bounds.
package charts
