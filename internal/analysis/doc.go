// Package analysis groups the pure computations weightlog performs over a
// dataset.
//
// Subpackages:
//   - variance   day-over-day differences between consecutive entries
//   - daterange  default and quick date windows, date filters and formatting
//   - trend      ordinary least-squares trend lines
//   - axis       explicit y-axis bounds for the weight chart
//
// None of them hold state between calls: every function takes the current
// inputs and returns fresh values, so callers can recompute on every change.
package analysis
