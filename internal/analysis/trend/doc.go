// Package trend fits ordinary least-squares lines to point series.
//
// The weight chart fits weight against time (milliseconds since the Unix
// epoch, so uneven spacing between weigh-ins is respected); the variance
// chart fits variance against its position in the series. Each fit is an
// independent computation over its own input.
package trend
